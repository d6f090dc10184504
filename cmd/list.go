package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/classfetch/classfetch/filter"
	"github.com/classfetch/classfetch/tc"
)

var (
	listClassroomID int64
	listSessionID   int64
	listChildID     int64
	listOnlyPhotos  bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List records of a given kind",
	Long:  `List children, classrooms, schools, sessions, users or activities.`,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.AddCommand(listChildrenCmd)
	listCmd.AddCommand(listClassroomsCmd)
	listCmd.AddCommand(listSchoolsCmd)
	listCmd.AddCommand(listSessionsCmd)
	listCmd.AddCommand(listUsersCmd)
	listCmd.AddCommand(listActivitiesCmd)

	listChildrenCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listChildrenCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listChildrenCmd.Flags().Int64Var(&listClassroomID, "classroom", 0, "restrict to a classroom id")
	listChildrenCmd.Flags().Int64Var(&listSessionID, "session", 0, "restrict to a session id")
	listChildrenCmd.Flags().BoolVar(&showDetails, "details", false, "show detail fields")

	listClassroomsCmd.Flags().Int64Var(&listSessionID, "session", 0, "restrict to a session id")

	listUsersCmd.Flags().Int64Var(&listClassroomID, "classroom", 0, "restrict to a classroom id")

	listActivitiesCmd.Flags().Int64Var(&listChildID, "child", 0, "child id to fetch the feed for")
	listActivitiesCmd.Flags().Int64Var(&listClassroomID, "classroom", 0, "classroom id to fetch the feed for")
	listActivitiesCmd.Flags().BoolVar(&listOnlyPhotos, "only-photos", false, "only photo activities")
}

var listChildrenCmd = &cobra.Command{
	Use:   "children",
	Short: "List children, optionally narrowed by a filter expression",
	RunE:  runListChildren,
}

func runListChildren(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	children, err := client.ListChildren(ctx, tc.ChildQuery{
		ClassroomID: listClassroomID,
		SessionID:   listSessionID,
	})
	if err != nil {
		return err
	}

	expr, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expr != "" {
		logger.Info().Str("filter", expr).Msg("Filtering children")

		f, err := filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		children, err = f.Children(children)
		if err != nil {
			return err
		}
	}

	if len(children) == 0 {
		fmt.Println("No children found.")
		return nil
	}

	fmt.Printf("\nFound %d children:\n", len(children))
	fmt.Println(strings.Repeat("-", 80))

	for _, c := range children {
		fmt.Printf("• %s %s (ID: %s)", str(c.FirstName), str(c.LastName), num(c.ID))
		if c.LastDay != nil {
			fmt.Printf(" [WITHDRAWN]")
		}
		fmt.Println()
		if cfg.Output.ShowDetails {
			if c.BirthDate != nil {
				fmt.Printf("  Born: %s\n", c.BirthDate)
			}
			if c.Program != nil {
				fmt.Printf("  Program: %s\n", *c.Program)
			}
			if c.Grade != nil {
				fmt.Printf("  Grade: %s\n", *c.Grade)
			}
			if c.Allergies != nil {
				fmt.Printf("  Allergies: %s\n", *c.Allergies)
			}
			if len(c.ClassroomIDs) > 0 {
				fmt.Printf("  Classrooms: %s\n", joinInts(c.ClassroomIDs))
			}
			if c.FirstDay != nil {
				fmt.Printf("  First day: %s\n", c.FirstDay)
			}
			if c.LastDay != nil {
				fmt.Printf("  Last day: %s", c.LastDay)
				if c.ExitReason != nil {
					fmt.Printf(" (%s)", *c.ExitReason)
				}
				fmt.Println()
			}
		}
	}

	return nil
}

var listClassroomsCmd = &cobra.Command{
	Use:   "classrooms",
	Short: "List classrooms",
	RunE: func(cmd *cobra.Command, args []string) error {
		rooms, err := client.ListClassrooms(context.Background(), tc.ClassroomQuery{SessionID: listSessionID})
		if err != nil {
			return err
		}
		if len(rooms) == 0 {
			fmt.Println("No classrooms found.")
			return nil
		}
		fmt.Printf("\nFound %d classrooms:\n", len(rooms))
		fmt.Println(strings.Repeat("-", 80))
		for _, r := range rooms {
			fmt.Printf("• %s (ID: %s)", str(r.Name), num(r.ID))
			if r.Level != nil {
				fmt.Printf("  level=%s", *r.Level)
			}
			if r.Active != nil && !*r.Active {
				fmt.Printf(" [INACTIVE]")
			}
			fmt.Println()
		}
		return nil
	},
}

var listSchoolsCmd = &cobra.Command{
	Use:   "schools",
	Short: "List schools visible to the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		schools, err := client.ListSchools(context.Background(), tc.PageQuery{})
		if err != nil {
			return err
		}
		if len(schools) == 0 {
			fmt.Println("No schools found.")
			return nil
		}
		fmt.Printf("\nFound %d schools:\n", len(schools))
		fmt.Println(strings.Repeat("-", 80))
		for _, s := range schools {
			fmt.Printf("• %s (ID: %s)", str(s.Name), num(s.ID))
			if s.Address != nil {
				fmt.Printf("  %s", *s.Address)
			}
			fmt.Println()
		}
		return nil
	},
}

var listSessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List school sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := client.ListSessions(context.Background(), tc.PageQuery{})
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}
		fmt.Printf("\nFound %d sessions:\n", len(sessions))
		fmt.Println(strings.Repeat("-", 80))
		for _, s := range sessions {
			fmt.Printf("• %s (ID: %s)", str(s.Name), num(s.ID))
			if s.StartDate != nil && s.StopDate != nil {
				fmt.Printf("  %s to %s", s.StartDate, s.StopDate)
			}
			if s.Current != nil && *s.Current {
				fmt.Printf(" [CURRENT]")
			}
			fmt.Println()
		}
		return nil
	},
}

var listUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List staff and parent accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := client.ListUsers(context.Background(), tc.UserQuery{ClassroomID: listClassroomID})
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		fmt.Printf("\nFound %d users:\n", len(users))
		fmt.Println(strings.Repeat("-", 80))
		for _, u := range users {
			fmt.Printf("• %s %s (ID: %s)", str(u.FirstName), str(u.LastName), num(u.ID))
			if len(u.Roles) > 0 {
				fmt.Printf("  [%s]", strings.Join(u.Roles, ", "))
			}
			if u.Inactive != nil && *u.Inactive {
				fmt.Printf(" [INACTIVE]")
			}
			fmt.Println()
		}
		return nil
	},
}

var listActivitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List feed activity for a child or classroom",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listChildID == 0 && listClassroomID == 0 {
			return fmt.Errorf("either --child or --classroom is required")
		}
		acts, err := client.ListActivities(context.Background(), tc.ActivityQuery{
			ChildID:     listChildID,
			ClassroomID: listClassroomID,
			OnlyPhotos:  listOnlyPhotos,
		})
		if err != nil {
			return err
		}
		if len(acts) == 0 {
			fmt.Println("No activities found.")
			return nil
		}
		fmt.Printf("\nFound %d activities:\n", len(acts))
		fmt.Println(strings.Repeat("-", 80))
		for _, a := range acts {
			when := ""
			if a.Date != nil {
				when = a.Date.String()
			} else if a.CreatedAt != nil {
				when = a.CreatedAt.Format("2006-01-02")
			}
			fmt.Printf("• [%s] %s\n", when, str(a.Text))
		}
		return nil
	},
}

// Display helpers. Mapped fields are pointers; absent values print as "-".

func str(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

func num(p *int64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}

func joinInts(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
