package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"prostor/internal/config"
	"prostor/internal/domain"
	"prostor/internal/engine"
	"prostor/internal/seed"
	"prostor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prostor",
	Short: "Prostor project board CLI",
	Long: `Prostor tracks renovation projects through a fixed stage lifecycle.
Core concepts:
- Stage: one of nine lifecycle steps (lead ... warranty), each gated by typed requirements.
- Requirement: a field the project must satisfy (checkbox, percentage threshold, file or text).
- Risk: derived status per project - ok, idle, blocked or overdue.
- Alert: recomputed notification list (deadlines, inactivity, blocked stages).
- Rule: condition-action automation with priorities and stop-on-match.
- Role: determines which fields you may edit and whether you may move projects.
State is seeded with the demo portfolio each run; pass --config to load custom catalogs.`,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("PROSTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("config", "", "path to catalog YAML (default: built-in)")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("role", "pm", "acting role id")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("role", rootCmd.PersistentFlags().Lookup("role"))
}

func registerCommands() {
	rootCmd.AddCommand(boardCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(alertsCmd())
	rootCmd.AddCommand(rulesCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(fixCmd())
	rootCmd.AddCommand(moveCmd())
	rootCmd.AddCommand(setCmd())
	rootCmd.AddCommand(logCmd())
	rootCmd.AddCommand(configCmd())
}

func boardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the project board grouped by stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				projects := st.Projects()
				if viper.GetBool("json") {
					return printJSON(projects)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"Stage", "ID", "Project", "Client", "Risk", "Deadline", "Missing"})
				for _, stage := range e.Config.Stages {
					for _, p := range projects {
						if p.Stage != stage.ID {
							continue
						}
						risk := e.ClassifyRisk(p)
						missing := len(e.MissingRequirements(p, ""))
						tw.AppendRow(table.Row{
							stage.Name, p.ID, p.Name, p.Client, risk.Label,
							fmt.Sprintf("%d дн.", e.DaysToDeadline(p)), missing,
						})
					}
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func projectCmd() *cobra.Command {
	prj := &cobra.Command{Use: "project", Short: "Inspect projects"}
	prj.AddCommand(projectListCmd())
	prj.AddCommand(projectShowCmd())
	return prj
}

func projectListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				projects := st.Projects()
				if viper.GetBool("json") {
					return printJSON(projects)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Project", "Client", "Stage", "Budget", "Assignees", "Tags"})
				for _, p := range projects {
					tw.AppendRow(table.Row{
						p.ID, p.Name, p.Client, p.Stage, fmt.Sprintf("%.0f", p.Budget),
						strings.Join(p.Assignees, ", "), strings.Join(p.Tags, ", "),
					})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func projectShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one project with requirement status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				p, ok := st.Project(args[0])
				if !ok {
					return store.ErrNotFound
				}
				if viper.GetBool("json") {
					return printJSON(map[string]any{
						"project": p,
						"risk":    e.ClassifyRisk(p),
						"missing": e.MissingRequirements(p, ""),
					})
				}
				risk := e.ClassifyRisk(p)
				fmt.Printf("%s — %s (%s)\n", p.ID, p.Name, p.Client)
				fmt.Printf("Stage: %s  Risk: %s  Deadline: %d дн.  Idle: %d дн.\n",
					p.Stage, risk.Label, e.DaysToDeadline(p), e.DaysIdle(p))
				stage, ok := e.Config.StageByID(p.Stage)
				if !ok {
					return nil
				}
				fmt.Println("Requirements:")
				for _, req := range stage.Required {
					mark := "✗"
					if req.MetBy(p.Fields) {
						mark = "✓"
					}
					fmt.Printf("  %s %s (%s = %s)\n", mark, req.Label, req.Field, p.Fields[req.Field])
				}
				return nil
			})
		},
	}
	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <id>",
		Short: "Show missing requirements and advance verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				p, ok := st.Project(args[0])
				if !ok {
					return store.ErrNotFound
				}
				missing := e.MissingRequirements(p, "")
				out := map[string]any{
					"project_id":  p.ID,
					"stage":       p.Stage,
					"can_advance": e.CanAdvance(p),
					"missing":     missing,
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				if len(missing) == 0 {
					fmt.Printf("%s: все требования этапа %s выполнены, можно переходить дальше\n", p.ID, p.Stage)
					return nil
				}
				fmt.Printf("%s: не выполнено %d требований этапа %s:\n", p.ID, len(missing), p.Stage)
				for _, req := range missing {
					fmt.Printf("  - %s (%s)\n", req.Label, req.Field)
				}
				return nil
			})
		},
	}
	return cmd
}

func alertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List current alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				alerts := st.Alerts()
				if viper.GetBool("json") {
					return printJSON(alerts)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"Severity", "Project", "Kind", "Message"})
				for _, a := range alerts {
					tw.AppendRow(table.Row{a.Severity, a.ProjectID, a.Kind, a.Message})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func rulesCmd() *cobra.Command {
	rules := &cobra.Command{Use: "rules", Short: "Automation rules"}
	rules.AddCommand(rulesListCmd())
	rules.AddCommand(rulesApplyCmd())
	return rules
}

func rulesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				rules := st.Rules()
				if viper.GetBool("json") {
					return printJSON(rules)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Name", "Enabled", "Priority", "Conditions", "Actions", "Stop"})
				for _, r := range rules {
					var kinds []string
					for _, c := range r.Conditions {
						kinds = append(kinds, string(c.Kind))
					}
					var acts []string
					for _, a := range r.Actions {
						acts = append(acts, a.ActionKind())
					}
					tw.AppendRow(table.Row{
						r.ID, r.Name, r.Enabled, r.Priority,
						strings.Join(kinds, ","), strings.Join(acts, ","), r.StopOnMatch,
					})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func rulesApplyCmd() *cobra.Command {
	var projectID string
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run a rule pass over one or all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				if dryRun {
					_, logs := e.ApplyRules(st.Projects(), projectID, true)
					if viper.GetBool("json") {
						return printJSON(logs)
					}
					if len(logs) == 0 {
						fmt.Println("Ни одно правило не сработало бы")
						return nil
					}
					for _, l := range logs {
						fmt.Printf("[dry-run] %s: %s\n", l.ProjectID, l.Details)
					}
					return nil
				}
				before := len(st.Logs())
				if err := st.ApplyRules(projectID); err != nil {
					return err
				}
				logs := st.Logs()[before:]
				if viper.GetBool("json") {
					return printJSON(logs)
				}
				if len(logs) == 0 {
					fmt.Println("Ни одно правило не сработало")
					return nil
				}
				for _, l := range logs {
					fmt.Printf("%s: %s\n", l.ProjectID, l.Details)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&projectID, "project", "", "limit pass to one project")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would happen without committing")
	return cmd
}

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Filter projects (id:, tag:/#, assignee:/@, stage:, client: or free text)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return withStore(func(e engine.Engine, st *store.Store) error {
				matched := e.FilterProjects(st.Projects(), query)
				if viper.GetBool("json") {
					return printJSON(matched)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Project", "Client", "Stage", "Tags", "Assignees"})
				for _, p := range matched {
					tw.AppendRow(table.Row{
						p.ID, p.Name, p.Client, p.Stage,
						strings.Join(p.Tags, ", "), strings.Join(p.Assignees, ", "),
					})
				}
				tw.Render()
				return nil
			})
		},
	}
	return cmd
}

func fixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix <id>",
		Short: "Fill minimum passing values for unmet requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				if err := st.FillMinimum(args[0]); err != nil {
					return err
				}
				p, _ := st.Project(args[0])
				if viper.GetBool("json") {
					return printJSON(map[string]any{"project": p, "can_advance": e.CanAdvance(p)})
				}
				fmt.Printf("Быстрый фикс применён к %s; можно переходить: %v\n", p.ID, e.CanAdvance(p))
				return nil
			})
		},
		Args: cobra.ExactArgs(1),
	}
	return cmd
}

func moveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <stage>",
		Short: "Move a project to a stage (role permitting)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				role := domain.RoleID(viper.GetString("role"))
				if err := st.MoveProjectToStage(args[0], role, domain.StageID(args[1])); err != nil {
					return err
				}
				return reportOutcome(st, args[0])
			})
		},
	}
	return cmd
}

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <id> <field> <value>",
		Short: "Set a project field (role permitting); triggers rules",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				role := domain.RoleID(viper.GetString("role"))
				field := domain.FieldKey(args[1])
				value := domain.ParseFieldValue(args[2])
				if err := st.UpdateProjectField(args[0], role, field, value); err != nil {
					return err
				}
				return reportOutcome(st, args[0])
			})
		},
	}
	return cmd
}

func logCmd() *cobra.Command {
	log := &cobra.Command{Use: "log", Short: "Journal"}
	log.AddCommand(logTailCmd())
	return log
}

func logTailCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Show recent journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				logs := st.Logs()
				if n > 0 && len(logs) > n {
					logs = logs[len(logs)-n:]
				}
				if viper.GetBool("json") {
					return printJSON(logs)
				}
				for _, l := range logs {
					fmt.Printf("%s [%s] %s %s\n", l.Timestamp.Format(time.RFC3339), l.Kind, l.ProjectID, l.Details)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&n, "n", 20, "number of entries")
	return cmd
}

func configCmd() *cobra.Command {
	cfg := &cobra.Command{Use: "config", Short: "Catalog configuration"}
	cfg.AddCommand(configShowCmd())
	cfg.AddCommand(configExportCmd())
	cfg.AddCommand(configCheckCmd())
	return cfg
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the loaded stage/role/rule catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(e engine.Engine, st *store.Store) error {
				return printJSON(map[string]any{
					"stages": e.Config.Stages,
					"roles":  e.Config.Roles,
					"rules":  e.Config.Rules,
				})
			})
		},
	}
	return cmd
}

func configExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the built-in catalog YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(config.GenerateDefault())
			return nil
		},
	}
	return cmd
}

func configCheckCmd() *cobra.Command {
	var filePath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a catalog YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.FromFile(filePath); err != nil {
				return err
			}
			fmt.Println("config ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&filePath, "file", "", "path to YAML catalog")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// --- helpers ---

func withStore(fn func(engine.Engine, *store.Store) error) error {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return err
	}
	e := engine.New(cfg)
	st := store.New(e, seed.Projects(time.Now()))
	return fn(e, st)
}

// reportOutcome prints the project plus journal entries the mutation
// produced, so denied actions are visible without a separate log tail.
func reportOutcome(st *store.Store, projectID string) error {
	p, ok := st.Project(projectID)
	if !ok {
		return store.ErrNotFound
	}
	logs := st.Logs()
	if viper.GetBool("json") {
		return printJSON(map[string]any{"project": p, "logs": logs})
	}
	fmt.Printf("%s: этап %s\n", p.ID, p.Stage)
	for _, l := range logs {
		if l.ProjectID == projectID {
			fmt.Printf("  %s\n", l.Details)
		}
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
