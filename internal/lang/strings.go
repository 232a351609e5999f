package lang

// Strings holds every user-facing label of the gallery in one language.
type Strings struct {
	Title         string
	Subtitle      string
	Placeholder   string
	ButtonIdle    string
	ButtonWishing string
	Reset         string
	GiftLocked    string
	GiftOpen      string
	ChooseOne     string

	// Terminal key hints.
	HelpIdle    string
	HelpOpening string
	HelpChosen  string
	MusicOn     string
	MusicOff    string
}

var table = map[Language]Strings{
	Primary: {
		Title:         "The Wish Gallery",
		Subtitle:      "Tell Santa your wish.",
		Placeholder:   "I wish for financial freedom...",
		ButtonIdle:    "Make a Wish",
		ButtonWishing: "Santa is preparing for your gifts...",
		Reset:         "Make Another Wish",
		GiftLocked:    "Locked",
		GiftOpen:      "Open Me",
		ChooseOne:     "You can only choose one gift.",
		HelpIdle:      "enter: make a wish • ctrl+l: language • ctrl+p: music • ctrl+c: quit",
		HelpOpening:   "←/→: pick a gift • enter: open • ctrl+l: language • ctrl+c: quit",
		HelpChosen:    "r: make another wish • ctrl+l: language • ctrl+c: quit",
		MusicOn:       "♪ on",
		MusicOff:      "♪ off",
	},
	Secondary: {
		Title:         "许愿",
		Subtitle:      "告诉圣诞老人你的愿望",
		Placeholder:   "我希望能实现财富自由...",
		ButtonIdle:    "许愿",
		ButtonWishing: "圣诞老人正在准备你的礼物...",
		Reset:         "许下另一个愿望",
		GiftLocked:    "已锁定",
		GiftOpen:      "打开我",
		ChooseOne:     "你只能选择一份礼物。",
		HelpIdle:      "enter: 许愿 • ctrl+l: 语言 • ctrl+p: 音乐 • ctrl+c: 退出",
		HelpOpening:   "←/→: 选择礼物 • enter: 打开 • ctrl+l: 语言 • ctrl+c: 退出",
		HelpChosen:    "r: 许下另一个愿望 • ctrl+l: 语言 • ctrl+c: 退出",
		MusicOn:       "♪ 开",
		MusicOff:      "♪ 关",
	},
}

// Lookup returns the label table for l, defaulting to Primary.
func Lookup(l Language) Strings {
	if s, ok := table[l]; ok {
		return s
	}
	return table[Primary]
}

// ToggleLabel is the caption of the language switch while l is active: the
// other language's own name.
func ToggleLabel(l Language) string {
	return l.Toggle().DisplayName()
}
