package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mitesh699/dealflow/internal/client"
	"github.com/mitesh699/dealflow/internal/engine"
	"github.com/mitesh699/dealflow/internal/store"
	"github.com/spf13/cobra"
)

// openDB is a helper that opens the database for CLI commands.
func openDB() (*store.DB, error) {
	dbPath := os.Getenv("DEALFLOW_DB")
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(dbPath)
}

func loadAll() (*store.DB, *engine.Engine, []store.Contact, error) {
	db, err := openDB()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open db: %w", err)
	}
	contacts, err := db.ListContacts()
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("list contacts: %w", err)
	}
	return db, engine.New(db, nil), contacts, nil
}

// --- queue command ---

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the follow-up queue",
	RunE:  runQueue,
}

func runQueue(cmd *cobra.Command, args []string) error {
	db, eng, contacts, err := loadAll()
	if err != nil {
		return err
	}
	defer db.Close()

	queue := eng.BuildFollowUpQueue(contacts)
	if len(queue) == 0 {
		fmt.Println("Queue is empty. Add contacts first.")
		return nil
	}

	for i, e := range queue {
		fmt.Printf("%d. [%s] %s (%s) — %dd since contact, score %d\n",
			i+1, e.Priority, e.Name, e.Company, e.DaysSinceContact, e.Score)
		fmt.Printf("   %s\n", e.Suggestion)
	}
	return nil
}

// --- notify command ---

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Show current notifications",
	RunE:  runNotify,
}

func runNotify(cmd *cobra.Command, args []string) error {
	db, eng, contacts, err := loadAll()
	if err != nil {
		return err
	}
	defer db.Close()

	notifications := eng.BuildNotifications(contacts)
	if len(notifications) == 0 {
		fmt.Println("No notifications.")
		return nil
	}

	for _, n := range notifications {
		fmt.Printf("[%s] %s: %s\n", n.Priority, n.Title, n.Message)
	}
	return nil
}

// --- agent command ---

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Propose and execute agent actions",
}

var agentActionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List proposed actions",
	RunE:  runAgentActions,
}

func runAgentActions(cmd *cobra.Command, args []string) error {
	db, eng, contacts, err := loadAll()
	if err != nil {
		return err
	}
	defer db.Close()

	actions := eng.ProposeActions(contacts)
	if len(actions) == 0 {
		fmt.Println("Nothing to propose.")
		return nil
	}

	for _, a := range actions {
		fmt.Printf("%d. [%s/%s] %s\n   %s (%s)\n",
			a.ID, a.Type, a.Impact, a.Description, a.Reason, a.ContactID)
	}
	return nil
}

var agentDelta int

// Execution goes through the running server so that concurrent executions
// against the same contact stay serialized in one process.
var agentExecuteCmd = &cobra.Command{
	Use:   "execute [contact-id] [action-type]",
	Short: "Execute an action against the running server",
	Args:  cobra.ExactArgs(2),
	RunE:  runAgentExecute,
}

func runAgentExecute(cmd *cobra.Command, args []string) error {
	c := client.New()
	if !c.Healthy() {
		return fmt.Errorf("dealflow server not reachable; start it with `dealflow serve`")
	}

	req := map[string]any{
		"contact_id":  args[0],
		"action_type": args[1],
	}
	if cmd.Flags().Changed("delta") {
		req["delta"] = agentDelta
	}
	body, _ := json.Marshal(req)

	data, err := c.Post("/api/agent/execute", body)
	if err != nil {
		return err
	}

	var res struct {
		Success bool   `json:"success"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	fmt.Printf("success: %s\n%s\n", strconv.FormatBool(res.Success), res.Detail)
	return nil
}

func init() {
	agentExecuteCmd.Flags().IntVar(&agentDelta, "delta", 0, "Score delta for score_update actions")
	agentCmd.AddCommand(agentActionsCmd)
	agentCmd.AddCommand(agentExecuteCmd)
}

// --- stats command ---

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pipeline statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	db, eng, contacts, err := loadAll()
	if err != nil {
		return err
	}
	defer db.Close()

	stats := eng.Stats(contacts)
	fmt.Printf("contacts: %d\n", stats.Total)
	fmt.Printf("average score: %.1f\n", stats.AverageScore)
	fmt.Printf("average age: %.1f days\n", stats.AverageAgeDays)

	counts, err := db.CountByStage()
	if err != nil {
		return fmt.Errorf("count by stage: %w", err)
	}
	for _, stage := range []store.Stage{
		store.StageProspect, store.StageIntro, store.StageDiligence,
		store.StagePortfolio, store.StagePassed,
	} {
		if n := counts[stage]; n > 0 {
			fmt.Printf("  %s: %d\n", stage, n)
		}
	}
	return nil
}
