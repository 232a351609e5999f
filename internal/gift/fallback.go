package gift

import "wishgallery/internal/lang"

var fallbackEN = [Count]Message{
	{Title: "Patience", Message: "Great things take time to grow. Trust the process.", Emoji: "🌱"},
	{Title: "Perspective", Message: "Happiness is not a destination, but a way of traveling.", Emoji: "🧭"},
	{Title: "Strength", Message: "You have within you right now, everything you need to deal with whatever the world can throw at you.", Emoji: "🦁"},
}

var fallbackZH = [Count]Message{
	{Title: "耐心", Message: "伟大的事物需要时间成长。相信过程。", Emoji: "🌱"},
	{Title: "视角", Message: "幸福不是终点，而是旅途中的方式。", Emoji: "🧭"},
	{Title: "力量", Message: "你内心拥有一切所需，去面对世界给予的一切。", Emoji: "🦁"},
}

// Fallback returns a fresh copy of the fixed gift list for preference.
func Fallback(preference lang.Language) []Message {
	src := fallbackEN
	if preference == lang.Secondary {
		src = fallbackZH
	}
	out := make([]Message, Count)
	copy(out, src[:])
	return out
}
