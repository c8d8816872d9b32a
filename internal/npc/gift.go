package npc

import (
	"fmt"

	"valley-farm/assets"
)

// ReactionKind grades how much a villager likes a gift.
type ReactionKind string

const (
	Love    ReactionKind = "love"
	Like    ReactionKind = "like"
	Neutral ReactionKind = "neutral"
	Dislike ReactionKind = "dislike"
	Hate    ReactionKind = "hate"
)

var reactionPoints = map[ReactionKind]int{
	Love:    80,
	Like:    45,
	Neutral: 20,
	Dislike: -20,
	Hate:    -40,
}

var reactionMessages = map[ReactionKind]string{
	Love:    "Oh, I love this! Thank you so much!",
	Like:    "Thanks, I really like this.",
	Neutral: "Thank you.",
	Dislike: "Hmm... not really my thing.",
	Hate:    "Ugh. Why would you give me this?",
}

// Reaction is the response to a gift.
type Reaction struct {
	Kind    ReactionKind
	Points  int
	Message string
}

func reaction(k ReactionKind) Reaction {
	return Reaction{Kind: k, Points: reactionPoints[k], Message: reactionMessages[k]}
}

// GiftReaction looks the item up in the villager's preferences, checking
// love, like, dislike and hate in that order. Unknown villagers are neutral.
func GiftReaction(npcID, itemID string) Reaction {
	def, ok := assets.NPCByID(npcID)
	if !ok {
		return reaction(Neutral)
	}
	prefs := []struct {
		kind  ReactionKind
		items []string
	}{
		{Love, def.Gifts.Love},
		{Like, def.Gifts.Like},
		{Dislike, def.Gifts.Dislike},
		{Hate, def.Gifts.Hate},
	}
	for _, p := range prefs {
		for _, id := range p.items {
			if id == itemID {
				return reaction(p.kind)
			}
		}
	}
	return reaction(Neutral)
}

// GiftResult is the outcome of a gift attempt. A rejected gift carries only
// the message.
type GiftResult struct {
	Success  bool
	State    State
	Reaction Reaction
	Message  string
}

// Gift hands itemID to the villager. today is the current calendar date;
// gifts on the villager's birthday count BirthdayFactor times.
func Gift(s State, itemID string, today assets.Birthday) GiftResult {
	def, known := assets.NPCByID(s.ID)
	name := s.ID
	if known {
		name = def.Name
	}
	switch {
	case s.GiftedToday:
		return GiftResult{State: s, Message: fmt.Sprintf("You've already given %s a gift today.", name)}
	case s.GiftsThisWeek >= WeeklyGiftLimit:
		return GiftResult{State: s, Message: fmt.Sprintf("%s has received enough gifts this week.", name)}
	}

	r := GiftReaction(s.ID, itemID)
	msg := r.Message
	if known && def.Birthday == today {
		r.Points *= BirthdayFactor
		msg = "A birthday present? " + msg
	}
	s.Hearts = max(0, s.Hearts+r.Points)
	s.GiftedToday = true
	s.GiftsThisWeek++
	return GiftResult{Success: true, State: s, Reaction: r, Message: msg}
}
