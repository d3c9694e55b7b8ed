package cli

import (
	"fmt"
	"time"

	"github.com/mitesh699/dealflow/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo contacts into the database",
	RunE:  runSeed,
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(store.DateLayout)
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	demo := []store.Contact{
		{Name: "Sarah Chen", Company: "Driftline", Role: "CEO", Email: "sarah@driftline.io",
			Stage: store.StageDiligence, Score: 82, LastContact: daysAgo(6), CreatedAt: daysAgo(45),
			Tags: []string{"saas", "logistics"}, Notes: "Strong traction, data room open."},
		{Name: "Marcus Webb", Company: "Hollowpoint Labs", Role: "CTO", Email: "marcus@hollowpoint.dev",
			Stage: store.StageProspect, Score: 71, LastContact: daysAgo(3), CreatedAt: daysAgo(12),
			Tags: []string{"devtools"}, Notes: "Impressive demo, warm intro from Priya."},
		{Name: "Elena Vasquez", Company: "Quietwater", Role: "Founder", Email: "elena@quietwater.co",
			Stage: store.StageIntro, Score: 55, LastContact: daysAgo(16), CreatedAt: daysAgo(30),
			Tags: []string{"fintech"}},
		{Name: "David Okafor", Company: "Brightmoor", Role: "CEO", Email: "david@brightmoor.ai",
			Stage: store.StagePortfolio, Score: 88, LastContact: daysAgo(19), CreatedAt: daysAgo(200),
			Tags: []string{"ml-infra"}, Notes: "Board meeting quarterly."},
		{Name: "Ines Fournier", Company: "Saltgrass", Role: "COO", Email: "ines@saltgrass.fr",
			Stage: store.StageProspect, Score: 38, LastContact: daysAgo(33), CreatedAt: daysAgo(70),
			Tags: []string{"marketplace"}},
		{Name: "Tom Reilly", Company: "Pinebox", Role: "Founder", Email: "tom@pinebox.app",
			Stage: store.StagePassed, Score: 25, LastContact: daysAgo(50), CreatedAt: daysAgo(120),
			Notes: "Passed on seed, revisit next round."},
	}

	for i := range demo {
		c := &demo[i]
		if err := db.CreateContact(c); err != nil {
			return fmt.Errorf("seed %s: %w", c.Name, err)
		}
		db.AddActivity(c.ID, store.ActivityCreated, "seeded demo contact")
	}

	fmt.Printf("seeded %d contacts into %s\n", len(demo), db.Path)
	return nil
}
