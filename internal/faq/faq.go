// Package faq holds the static FAQ dataset shipped with the app. The cache
// seeds itself from this corpus on first run so the assistant can answer
// common questions offline before any live responses have been cached.
package faq

import "github.com/ecocart/assistcache/pkg/types"

// Items is the built-in FAQ corpus. IDs are stable and referenced by cached
// entries, so existing IDs must never be reused for different content.
var Items = []types.FAQItem{
	{
		ID:       "faq-recycle-plastic",
		Question: "How do I recycle plastic bottles?",
		Answer:   "Rinse and place in the blue bin.",
		Category: "Recycling",
	},
	{
		ID:       "faq-recycle-glass",
		Question: "Can I recycle glass jars and bottles?",
		Answer:   "Yes. Rinse them, remove the lids, and drop them in the green bin or bring them to a collection point.",
		Category: "Recycling",
	},
	{
		ID:       "faq-recycle-electronics",
		Question: "Where can I recycle old electronics?",
		Answer:   "Small electronics can be handed over at any scheduled collection. Larger items need a special pickup booked from the Collections tab.",
		Category: "Recycling",
	},
	{
		ID:       "faq-recycle-batteries",
		Question: "How should I dispose of used batteries?",
		Answer:   "Never put batteries in household bins. Bag them separately and add them to your next collection; they count double for rewards points.",
		Category: "Recycling",
	},
	{
		ID:       "faq-points-earn",
		Question: "How do I earn EcoPoints?",
		Answer:   "You earn EcoPoints for every completed recycling collection and every grocery order placed through the app.",
		Category: "Rewards",
	},
	{
		ID:       "faq-points-redeem",
		Question: "How can I redeem my EcoPoints?",
		Answer:   "Open the Rewards tab and apply your points at checkout for discounts on grocery orders.",
		Category: "Rewards",
	},
	{
		ID:       "faq-collection-schedule",
		Question: "How do I schedule a recycling collection?",
		Answer:   "Go to the Collections tab, pick a date and time slot, and confirm. You can reschedule up to two hours before pickup.",
		Category: "Collections",
	},
	{
		ID:       "faq-collection-cancel",
		Question: "Can I cancel a scheduled collection?",
		Answer:   "Yes, collections can be cancelled from the Collections tab up to two hours before the pickup window.",
		Category: "Collections",
	},
	{
		ID:       "faq-order-track",
		Question: "How do I track my grocery order?",
		Answer:   "Open the Orders tab and select your order to see live status and the courier's estimated arrival time.",
		Category: "Orders",
	},
	{
		ID:       "faq-order-missing",
		Question: "What should I do if an item is missing from my order?",
		Answer:   "Report the missing item from the order details screen within 48 hours and we will refund it or redeliver.",
		Category: "Orders",
	},
}

// CommonQuery is a canned non-FAQ answer preloaded alongside the FAQ corpus.
type CommonQuery struct {
	Query  string
	Answer string
}

// CommonQueries are frequent free-form questions with canned answers, seeded
// as regular (non-FAQ) entries.
var CommonQueries = []CommonQuery{
	{
		Query:  "What is EcoCart?",
		Answer: "EcoCart is a grocery and recycling rewards app: order groceries, schedule recycling collections, and earn EcoPoints for both.",
	},
	{
		Query:  "Is the assistant available offline?",
		Answer: "Yes, common questions are answered from an on-device cache. New questions need a connection.",
	},
	{
		Query:  "How do I contact support?",
		Answer: "Use the Help section in your profile, or email support@ecocart.example. We reply within one business day.",
	},
}

// ByID resolves an FAQ item by its stable ID. Returns nil when unknown.
func ByID(id string) *types.FAQItem {
	for i := range Items {
		if Items[i].ID == id {
			return &Items[i]
		}
	}
	return nil
}
