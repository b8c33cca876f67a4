package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fazla-cloud/thunder-agency-platform/internal/database"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/fazla-cloud/thunder-agency-platform/internal/query"
	"github.com/fazla-cloud/thunder-agency-platform/internal/report"
	"github.com/fazla-cloud/thunder-agency-platform/internal/repository"
	"github.com/fazla-cloud/thunder-agency-platform/internal/services"
	"github.com/fazla-cloud/thunder-agency-platform/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func newMigrateCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.Migrate(app.db); err != nil {
				return err
			}
			fmt.Fprintln(app.out, "migrations applied")
			return nil
		},
	}
}

func newSeedCmd(app *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Ensure the task form options listed in a YAML file exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			seed, err := loadSeed(f)
			if err != nil {
				return err
			}
			options := services.NewOptionService(repository.NewOptionRepositories(app.db), nil)
			n, err := options.Seed(seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "%d options ensured\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "options.yml", "YAML file listing content_types, platforms, durations and dimensions")
	return cmd
}

// loadSeed decodes an option seed. Unknown keys are rejected.
func loadSeed(r io.Reader) (services.OptionSeed, error) {
	var seed services.OptionSeed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return seed, fmt.Errorf("invalid seed file: %w", err)
	}
	return seed, nil
}

func newUsersCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Inspect and manage accounts"}

	var role string
	list := &cobra.Command{
		Use:   "list",
		Short: "List profiles with their emails",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listUsers(app.db, role, app.out)
		},
	}
	list.Flags().StringVar(&role, "role", "", "only list profiles holding this role")

	var email, newRole string
	setRole := &cobra.Command{
		Use:   "set-role",
		Short: "Change the role of the account registered with an email",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := models.ParseRole(newRole)
			if !ok {
				return fmt.Errorf("%w: %q", services.ErrInvalidRole, newRole)
			}
			profiles := services.NewProfileService(repository.NewProfileRepository(app.db), repository.NewUserRepository(app.db), nil)
			profile, err := profiles.SetRoleByEmail(email, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "%s is now %s\n", email, profile.Role)
			return nil
		},
	}
	setRole.Flags().StringVar(&email, "email", "", "account email")
	setRole.Flags().StringVar(&newRole, "role", "", "new role (client, admin, designer, marketer)")
	_ = setRole.MarkFlagRequired("email")
	_ = setRole.MarkFlagRequired("role")

	cmd.AddCommand(list, setRole)
	return cmd
}

func listUsers(db *gorm.DB, role string, out io.Writer) error {
	var filter repository.ProfileFilter
	if role != "" {
		r, ok := models.ParseRole(role)
		if !ok {
			return fmt.Errorf("%w: %q", services.ErrInvalidRole, role)
		}
		filter.Role = &r
	}

	profiles, _, err := repository.NewProfileRepository(db).List(filter, utils.AllRows)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	users := repository.NewUserRepository(db)
	rows := make([]report.ProfileRow, 0, len(profiles))
	for _, p := range profiles {
		row := report.ProfileRow{Profile: p}
		if u, err := users.FindByID(p.ID); err == nil {
			row.Email = u.Email
		}
		rows = append(rows, row)
	}

	report.WriteProfiles(out, rows)
	return nil
}

// reportOptions are the filters of the report command.
type reportOptions struct {
	ClientID string
	Status   string
	Search   string
	From     string
	To       string
	CSV      string
}

func newReportCmd(app *cli) *cobra.Command {
	var opts reportOptions
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize tasks, or export them as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := app.cfg.Location()
			if err != nil {
				return err
			}
			return runReport(app.db, opts, loc, time.Now(), app.out)
		},
	}
	cmd.Flags().StringVar(&opts.ClientID, "client-id", "", "only tasks requested by this client")
	cmd.Flags().StringVar(&opts.Status, "status", query.StatusAll, "task status, or all")
	cmd.Flags().StringVar(&opts.Search, "search", "", "case-insensitive text in title, brief, content type or platform")
	cmd.Flags().StringVar(&opts.From, "from", "", "first creation day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.To, "to", "", "last creation day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.CSV, "csv", "", "write the filtered tasks to this CSV file (- for stdout)")
	return cmd
}

func runReport(db *gorm.DB, opts reportOptions, loc *time.Location, now time.Time, out io.Writer) error {
	params := query.ListParams{Status: opts.Status, Search: opts.Search}
	if params.Status == "" {
		params.Status = query.StatusAll
	}
	for _, bound := range []struct {
		raw  string
		dest *string
	}{{opts.From, &params.Dates.From}, {opts.To, &params.Dates.To}} {
		if bound.raw == "" {
			continue
		}
		day, ok := query.ParseDate(bound.raw)
		if !ok {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", bound.raw)
		}
		*bound.dest = day
	}

	filter := repository.TaskFilter{PreloadProject: true}
	if opts.ClientID != "" {
		filter.ClientID = &opts.ClientID
	}
	tasks, err := repository.NewTaskRepository(db).List(filter)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}
	tasks = query.Apply(tasks, params, loc, query.TaskRecord)

	switch opts.CSV {
	case "":
		report.WriteSummary(out, query.SummarizeTasks(tasks, now, loc))
		return nil
	case "-":
		return report.WriteCSV(out, tasks, loc)
	}

	f, err := os.Create(opts.CSV)
	if err != nil {
		return err
	}
	if err := report.WriteCSV(f, tasks, loc); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d tasks to %s\n", len(tasks), opts.CSV)
	return nil
}
