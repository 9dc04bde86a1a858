package catalog

import (
	"codearena/internal/domain/model"
)

// Badges is the full achievement table. It is process-wide constant data;
// users reference entries by ID.
var Badges = []model.Badge{
	{
		ID:          "first-solve",
		Name:        "First Blood",
		Description: "Awarded for solving your first problem on the platform.",
		ImageURL:    "/badges/first-solve.png",
		Rarity:      model.RarityCommon,
		Criteria:    "Solve your first coding problem",
	},
	{
		ID:          "streak-7",
		Name:        "Week Warrior",
		Description: "Solve at least one problem every day for 7 consecutive days.",
		ImageURL:    "/badges/streak-7.png",
		Rarity:      model.RarityUncommon,
		Criteria:    "Maintain a 7-day solving streak",
	},
	{
		ID:          "streak-30",
		Name:        "Monthly Master",
		Description: "Solve at least one problem every day for 30 consecutive days.",
		ImageURL:    "/badges/streak-30.png",
		Rarity:      model.RarityRare,
		Criteria:    "Maintain a 30-day solving streak",
	},
	{
		ID:          "streak-100",
		Name:        "Century Coder",
		Description: "Solve at least one problem every day for 100 consecutive days.",
		ImageURL:    "/badges/streak-100.png",
		Rarity:      model.RarityLegendary,
		Criteria:    "Maintain a 100-day solving streak",
	},
	{
		ID:          "problem-creator",
		Name:        "Problem Creator",
		Description: "Create a problem that gets approved and added to the platform.",
		ImageURL:    "/badges/problem-creator.png",
		Rarity:      model.RarityUncommon,
		Criteria:    "Create a problem that gets approved",
	},
	{
		ID:          "contest-winner",
		Name:        "Contest Winner",
		Description: "Win first place in any coding contest on the platform.",
		ImageURL:    "/badges/contest-winner.png",
		Rarity:      model.RarityEpic,
		Criteria:    "Win a coding contest",
	},
	{
		ID:          "easy-master",
		Name:        "Easy Master",
		Description: "Solve all easy difficulty problems on the platform.",
		ImageURL:    "/badges/easy-master.png",
		Rarity:      model.RarityUncommon,
		Criteria:    "Solve all easy problems",
	},
	{
		ID:          "medium-master",
		Name:        "Medium Master",
		Description: "Solve all medium difficulty problems on the platform.",
		ImageURL:    "/badges/medium-master.png",
		Rarity:      model.RarityRare,
		Criteria:    "Solve all medium problems",
	},
	{
		ID:          "hard-master",
		Name:        "Hard Master",
		Description: "Solve all hard difficulty problems on the platform.",
		ImageURL:    "/badges/hard-master.png",
		Rarity:      model.RarityEpic,
		Criteria:    "Solve all hard problems",
	},
	{
		ID:          "expert-master",
		Name:        "Expert Master",
		Description: "Solve all expert difficulty problems on the platform.",
		ImageURL:    "/badges/expert-master.png",
		Rarity:      model.RarityLegendary,
		Criteria:    "Solve all expert problems",
	},
	{
		ID:          "speed-demon",
		Name:        "Speed Demon",
		Description: "Solve a problem within 5 minutes of its release.",
		ImageURL:    "/badges/speed-demon.png",
		Rarity:      model.RarityRare,
		Criteria:    "Solve a problem within 5 minutes of release",
	},
	{
		ID:          "perfect-solution",
		Name:        "Perfect Solution",
		Description: "Submit a solution that ranks in the top 1% in both time and memory efficiency.",
		ImageURL:    "/badges/perfect-solution.png",
		Rarity:      model.RarityEpic,
		Criteria:    "Submit a top 1% efficient solution",
	},
	{
		ID:          "one-liner",
		Name:        "One-Liner",
		Description: "Solve a problem with a valid solution that uses only one line of code.",
		ImageURL:    "/badges/one-liner.png",
		Rarity:      model.RarityRare,
		Criteria:    "Solve a problem with one line of code",
	},
	{
		ID:          "helpful-commenter",
		Name:        "Helpful Commenter",
		Description: "Receive 10 upvotes on your solution explanations or comments.",
		ImageURL:    "/badges/helpful-commenter.png",
		Rarity:      model.RarityUncommon,
		Criteria:    "Get 10 upvotes on your comments",
	},
	{
		ID:          "bug-hunter",
		Name:        "Bug Hunter",
		Description: "Report a valid bug in a problem or test case that gets fixed.",
		ImageURL:    "/badges/bug-hunter.png",
		Rarity:      model.RarityRare,
		Criteria:    "Report a valid bug that gets fixed",
	},
	{
		ID:          "early-adopter",
		Name:        "Early Adopter",
		Description: "Join the platform during its beta phase.",
		ImageURL:    "/badges/early-adopter.png",
		Rarity:      model.RarityLegendary,
		Criteria:    "Join during beta phase",
	},
	{
		ID:          "polyglot",
		Name:        "Polyglot",
		Description: "Solve the same problem in 5 different programming languages.",
		ImageURL:    "/badges/polyglot.png",
		Rarity:      model.RarityEpic,
		Criteria:    "Solve a problem in 5 different languages",
	},
	{
		ID:          "night-owl",
		Name:        "Night Owl",
		Description: "Submit 10 successful solutions between midnight and 5 AM.",
		ImageURL:    "/badges/night-owl.png",
		Rarity:      model.RarityUncommon,
		Criteria:    "Submit 10 solutions between midnight and 5 AM",
	},
	{
		ID:          "competition-champion",
		Name:        "Competition Champion",
		Description: "Participate in 10 coding competitions.",
		ImageURL:    "/badges/competition-champion.png",
		Rarity:      model.RarityRare,
		Criteria:    "Participate in 10 coding competitions",
	},
	{
		ID:          "centennial",
		Name:        "Centennial",
		Description: "Solve 100 different problems on the platform.",
		ImageURL:    "/badges/centennial.png",
		Rarity:      model.RarityEpic,
		Criteria:    "Solve 100 different problems",
	},
}

func BadgeByID(id string) (*model.Badge, bool) {
	for i := range Badges {
		if Badges[i].ID == id {
			return &Badges[i], true
		}
	}
	return nil, false
}
