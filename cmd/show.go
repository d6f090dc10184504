package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/classfetch/classfetch/model"
)

var asOf string

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the detail record for a single entity",
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.AddCommand(showChildCmd)
	showCmd.AddCommand(showFormCmd)
	showCmd.AddCommand(showUserCmd)
	showCmd.AddCommand(showApplicationCmd)
	showCmd.AddCommand(showLessonSetCmd)

	showChildCmd.Flags().StringVar(&asOf, "as-of", "", "show the record as of a date (YYYY-MM-DD)")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id '%s': must be a positive integer", arg)
	}
	return id, nil
}

var showChildCmd = &cobra.Command{
	Use:   "child <id>",
	Short: "Show a child's full record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		var child *model.Child
		if asOf != "" {
			d, err := model.ParseDate(asOf)
			if err != nil {
				return fmt.Errorf("invalid --as-of date: %w", err)
			}
			child, err = client.GetChildAsOf(ctx, id, d)
			if err != nil {
				return err
			}
		} else {
			child, err = client.GetChild(ctx, id)
			if err != nil {
				return err
			}
		}

		fmt.Printf("%s %s (ID: %s)\n", str(child.FirstName), str(child.LastName), num(child.ID))
		fmt.Println(strings.Repeat("-", 80))
		printField("Birth date", dateStr(child.BirthDate))
		printField("Gender", str(child.Gender))
		printField("Program", str(child.Program))
		printField("Grade", str(child.Grade))
		printField("Student ID", str(child.StudentID))
		printField("Hours", str(child.HoursString))
		printField("Dominant language", str(child.DominantLang))
		printField("Allergies", str(child.Allergies))
		printField("Notes", str(child.Notes))
		if len(child.Ethnicity) > 0 {
			printField("Ethnicity", strings.Join(child.Ethnicity, ", "))
		}
		if len(child.ParentIDs) > 0 {
			printField("Parents", joinInts(child.ParentIDs))
		}
		if len(child.ClassroomIDs) > 0 {
			printField("Classrooms", joinInts(child.ClassroomIDs))
		}
		printField("First day", dateStr(child.FirstDay))
		if child.LastDay != nil {
			printField("Last day", child.LastDay.String())
			printField("Exit reason", str(child.ExitReason))
			printField("Exit notes", str(child.ExitNotes))
		}
		return nil
	},
}

var showFormCmd = &cobra.Command{
	Use:   "form <id>",
	Short: "Show a submitted form with its field widgets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		form, err := client.GetForm(context.Background(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Form %s", num(form.ID))
		if form.State != nil {
			fmt.Printf(" [%s]", *form.State)
		}
		fmt.Println()
		fmt.Println(strings.Repeat("-", 80))
		printField("Student", strings.TrimSpace(str(form.StudentFirstName)+" "+str(form.StudentLastName)))
		printField("Parent", str(form.ParentName))
		printField("Classroom", str(form.Classroom))
		if form.CreatedAt != nil {
			printField("Submitted", form.CreatedAt.Format("2006-01-02 15:04"))
		}
		if len(form.Fields) > 0 {
			fmt.Println("\nFields:")
			printWidgets(form.Fields)
		}
		return nil
	},
}

var showUserCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Show a staff or parent account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		user, err := client.GetUser(context.Background(), id)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s (ID: %s)\n", str(user.FirstName), str(user.LastName), num(user.ID))
		fmt.Println(strings.Repeat("-", 80))
		printField("Email", str(user.Email))
		if len(user.Roles) > 0 {
			printField("Roles", strings.Join(user.Roles, ", "))
		}
		printField("Address", str(user.Address))
		printField("Mobile", str(user.MobileNumber))
		printField("Home", str(user.HomeNumber))
		printField("Work", str(user.WorkNumber))
		if user.Inactive != nil && *user.Inactive {
			fmt.Println("Status: INACTIVE")
		}
		return nil
	},
}

var showApplicationCmd = &cobra.Command{
	Use:   "application <id>",
	Short: "Show an online admission application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app, err := client.GetOnlineApplication(context.Background(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Application %s [%s]\n", num(app.ID), str(app.State))
		fmt.Println(strings.Repeat("-", 80))
		printField("Child", strings.TrimSpace(str(app.ChildFirstName)+" "+str(app.ChildLastName)))
		printField("Birth date", dateStr(app.ChildBirthDate))
		printField("Gender", str(app.ChildGender))
		printField("Program", str(app.Program))
		printField("Contact email", str(app.MotherEmail))
		if len(app.Fields) > 0 {
			fmt.Println("\nFields:")
			printWidgets(app.Fields)
		}
		return nil
	},
}

var showLessonSetCmd = &cobra.Command{
	Use:   "lesson-set <id>",
	Short: "Show a curriculum lesson set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ls, err := client.GetLessonSet(context.Background(), id)
		if err != nil {
			return err
		}
		fmt.Printf("Lesson set %s: %s\n", num(ls.ID), str(ls.Name))
		return nil
	},
}

func printField(label, value string) {
	if value == "" || value == "-" {
		return
	}
	fmt.Printf("%-20s %s\n", label+":", value)
}

func dateStr(d *model.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

// printWidgets renders a form's widgets one per line, indented.
func printWidgets(widgets []model.Widget) {
	for _, w := range widgets {
		switch w := w.(type) {
		case model.TextWidget:
			fmt.Printf("  %s: %s\n", widgetLabel(w.Label, w.Name), str(w.Value))
		case model.SelectWidget:
			fmt.Printf("  %s: %s\n", widgetLabel(w.Label, w.Name), str(w.Value))
		case model.DateWidget:
			fmt.Printf("  %s: %s\n", widgetLabel(w.Label, w.Name), dateStr(w.Value))
		case model.CheckboxWidget:
			checked := "no"
			if w.Checked != nil && *w.Checked {
				checked = "yes"
			}
			fmt.Printf("  %s: %s\n", widgetLabel(w.Label, w.Name), checked)
		case model.HeaderWidget:
			fmt.Printf("  == %s ==\n", str(w.Label))
		case model.UnknownWidget:
			fmt.Printf("  [%s widget]\n", w.Type)
		}
	}
}

func widgetLabel(label, name *string) string {
	if label != nil && *label != "" {
		return *label
	}
	if name != nil && *name != "" {
		return *name
	}
	return "(unnamed)"
}
