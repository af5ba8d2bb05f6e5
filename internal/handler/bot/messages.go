package bot

import (
	"fmt"
	"strings"
	"time"

	"card-drop/internal/usecase/commands"
	"card-drop/internal/usecase/queries"
)

const (
	msgNoItems    = "❌ No cards found!\nAsk the admin to add images to the cards folder."
	msgTryAgain   = "❌ Something went wrong. Please try again in a moment."
	msgBusy       = "⏳ Your previous /drop is still being processed. Try again in a moment."
	msgEmptyBoard = "😴 Nobody has opened a card yet..."
)

func splitRemaining(d time.Duration) (mins, secs int) {
	d = d.Truncate(time.Second)
	return int(d / time.Minute), int((d % time.Minute) / time.Second)
}

func cooldownMinutes(d time.Duration) int {
	return int(d / time.Minute)
}

func startText(name string, status *queries.StatusView, stats *queries.StatsView, cooldown time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎴 Hi, %s!\n", name)
	fmt.Fprintf(&b, "📊 Cards in collection: %d\n", status.ItemCount)
	fmt.Fprintf(&b, "⭐ Points: %d\n", status.Score)
	fmt.Fprintf(&b, "🎯 Cards in the game: %d\n\n", stats.AvailableNow)
	if !status.Eligible {
		mins, secs := splitRemaining(status.Remaining)
		fmt.Fprintf(&b, "⏳ Next card in: %d min %d sec\n", mins, secs)
		b.WriteString("🔔 I'll message you when the timer is over!\n\n")
	} else {
		b.WriteString("✅ You can open a card right now!\n\n")
	}
	b.WriteString("📋 Commands:\n")
	b.WriteString("/drop - Get a card 🎴\n")
	b.WriteString("/list - My collection 📚\n")
	b.WriteString("/top - Top players 🏆\n")
	b.WriteString("/help - Help ❓\n\n")
	fmt.Fprintf(&b, "⏰ Timer: %d minutes", cooldownMinutes(cooldown))
	return b.String()
}

func blockedText(name string, remaining time.Duration) string {
	mins, secs := splitRemaining(remaining)
	return fmt.Sprintf("⏳ %s, wait a little longer:\n🕐 %d minutes %d seconds\n\n"+
		"I'll message you when the next card can be opened! 🔔", name, mins, secs)
}

func claimCaption(result *commands.ClaimResult, cooldown time.Duration) string {
	return fmt.Sprintf("🎴 New card!\n💎 Points: %d\n⭐ Total: %d\n⏰ Next one in %d min\n"+
		"🔔 I'll let you know when you can open the next one!",
		result.Points, result.Score, cooldownMinutes(cooldown))
}

func listText(name string, status *queries.StatusView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 %s's collection:\n\n", name)
	fmt.Fprintf(&b, "📊 Cards: %d\n", status.ItemCount)
	fmt.Fprintf(&b, "⭐ Points: %d\n", status.Score)
	if status.Rank != nil {
		fmt.Fprintf(&b, "🏆 Rank: %d\n\n", *status.Rank)
	} else {
		b.WriteString("🏆 Rank: -\n\n")
	}
	if !status.Eligible {
		mins, secs := splitRemaining(status.Remaining)
		fmt.Fprintf(&b, "⏳ Next card in: %d min %d sec\n", mins, secs)
		b.WriteString("🔔 The notification will arrive automatically!")
	} else {
		b.WriteString("✅ You can open a card! /drop")
	}
	return b.String()
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

func topText(entries []queries.LeaderboardEntry) string {
	if len(entries) == 0 {
		return msgEmptyBoard
	}
	var b strings.Builder
	b.WriteString("🏆 TOP PLAYERS 🏆\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", medal(e.Rank), e.DisplayName)
		fmt.Fprintf(&b, "   ⭐ %d points | 🎴 %d cards\n\n", e.Score, e.ItemCount)
	}
	b.WriteString("💡 Use /drop to get cards!")
	return b.String()
}

func helpText(cooldown time.Duration, minPoints, maxPoints int) string {
	mins := cooldownMinutes(cooldown)
	var b strings.Builder
	b.WriteString("📖 BOT HELP\n\n")
	b.WriteString("🎴 Card collector: open a random card on a timer\n\n")
	b.WriteString("📋 COMMANDS:\n")
	b.WriteString("/start - Get started\n")
	fmt.Fprintf(&b, "/drop - Get a card (once every %d min)\n", mins)
	b.WriteString("/list - View your collection\n")
	b.WriteString("/top - Top players by points\n")
	b.WriteString("/stats - Global statistics\n")
	b.WriteString("/help - This help\n\n")
	b.WriteString("📊 POINTS:\n")
	fmt.Fprintf(&b, "• Every card is worth a random number of points (%d-%d)\n", minPoints, maxPoints)
	b.WriteString("• Points add up to your score\n")
	b.WriteString("• More cards and higher values put you higher in the top!\n\n")
	b.WriteString("⏰ TIMER:\n")
	fmt.Fprintf(&b, "• Between cards: %d minutes\n", mins)
	b.WriteString("• The bot messages you when the next card can be opened!\n\n")
	b.WriteString("🔔 NOTIFICATIONS:\n")
	b.WriteString("• Survive bot restarts\n")
	b.WriteString("• Arrive in private messages")
	return b.String()
}

func statsText(stats *queries.StatsView) string {
	return fmt.Sprintf("📊 BOT STATISTICS\n\n"+
		"👥 Players: %d\n"+
		"🎴 Cards owned: %d\n"+
		"⭐ Total points: %d\n"+
		"📁 Cards available: %d\n",
		stats.Participants, stats.ItemsOwned, stats.TotalPoints, stats.AvailableNow)
}
