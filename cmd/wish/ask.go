package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wishgallery/internal/gift"
	"wishgallery/internal/lang"
	"wishgallery/internal/session"
)

var askJSON bool

// errBlankWish is returned when the joined arguments are only whitespace.
var errBlankWish = errors.New("wish must not be blank")

// askCmd makes a single wish without the interactive gallery
var askCmd = &cobra.Command{
	Use:   "ask [wish]",
	Short: "Make one wish and print the three gifts",
	Long: `Sends a wish through the same session lifecycle as the gallery and prints
the three gifts. There is no reveal delay and no choosing.

Example:
  wish ask "I wish for financial freedom"
  wish ask --lang zh --json 我希望健康`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

// askResult is the --json output.
type askResult struct {
	Session  string         `json:"session"`
	Wish     string         `json:"wish"`
	Language lang.Language  `json:"language"`
	Gifts    []gift.Message `json:"gifts"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	client, err := newGiftClient(ctx)
	if err != nil {
		return err
	}
	ctrl := session.New(client,
		session.WithPacer(session.NoPacer{}),
		session.WithLanguage(cfg.GetLanguage()),
	)
	defer ctrl.Close()

	snap, err := ask(ctx, ctrl, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return printGifts(cmd.OutOrStdout(), snap, askJSON)
}

// ask submits wish and waits for the session to settle.
func ask(ctx context.Context, ctrl *session.Controller, wish string) (session.Snapshot, error) {
	if !ctrl.SubmitWish(ctx, wish) {
		return session.Snapshot{}, errBlankWish
	}
	ctrl.Wait()

	// The gift client answers with the fallback list on timeout, so only a
	// misbehaving generator leaves the session short of Opening.
	snap := ctrl.Snapshot()
	if snap.State != session.StateOpening {
		return snap, errors.New("no gifts were prepared")
	}
	return snap, nil
}

func printGifts(w io.Writer, snap session.Snapshot, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(askResult{
			Session:  snap.ID,
			Wish:     snap.Wish,
			Language: snap.Language,
			Gifts:    snap.Gifts,
		})
	}

	s := lang.Lookup(snap.Language)
	fmt.Fprintf(w, "🎅 %s\n\n", s.Title)
	for i, g := range snap.Gifts {
		fmt.Fprintf(w, "%d. %s %s\n   %s\n", i+1, g.Emoji, g.Title, g.Message)
	}
	return nil
}
