package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	entriesCmd := &cobra.Command{Use: "entries", Short: "Entry operations within a timesheet"}

	var timesheetID string
	entriesCmd.PersistentFlags().StringVarP(&timesheetID, "timesheet", "t", "", "Timesheet ID (required)")
	_ = entriesCmd.MarkPersistentFlagRequired("timesheet")

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List entries of a timesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := do(newClient().R(), http.MethodGet, "/api/timesheets/"+timesheetID+"/entries")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	entriesCmd.AddCommand(listCmd)

	// add
	var date, description, project string
	var hours float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry; the timesheet's hours and status are resynced",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"date": date, "description": description, "project": project, "hours": hours,
			}
			data, err := do(newClient().R().SetBody(payload), http.MethodPost, "/api/timesheets/"+timesheetID+"/entries")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	addCmd.Flags().StringVarP(&date, "date", "d", "", "Entry date YYYY-MM-DD (required)")
	addCmd.Flags().StringVarP(&description, "description", "m", "", "Work description (required)")
	addCmd.Flags().StringVarP(&project, "project", "p", "", "Project name (required)")
	addCmd.Flags().Float64Var(&hours, "hours", 0, "Hours worked, 0-24")
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("project")
	entriesCmd.AddCommand(addCmd)

	// update
	var uDate, uDescription, uProject string
	var uHours float64
	updateCmd := &cobra.Command{
		Use:   "update ENTRY_ID",
		Short: "Replace an entry's fields; the timesheet is resynced",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"date": uDate, "description": uDescription, "project": uProject, "hours": uHours,
			}
			data, err := do(newClient().R().SetBody(payload), http.MethodPut, "/api/timesheets/"+timesheetID+"/entries/"+args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	updateCmd.Flags().StringVarP(&uDate, "date", "d", "", "Entry date YYYY-MM-DD (required)")
	updateCmd.Flags().StringVarP(&uDescription, "description", "m", "", "Work description (required)")
	updateCmd.Flags().StringVarP(&uProject, "project", "p", "", "Project name (required)")
	updateCmd.Flags().Float64Var(&uHours, "hours", 0, "Hours worked, 0-24")
	_ = updateCmd.MarkFlagRequired("date")
	_ = updateCmd.MarkFlagRequired("description")
	_ = updateCmd.MarkFlagRequired("project")
	entriesCmd.AddCommand(updateCmd)

	// rm
	rmCmd := &cobra.Command{
		Use:   "rm ENTRY_ID",
		Short: "Delete an entry; the timesheet is resynced",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := do(newClient().R(), http.MethodDelete, "/api/timesheets/"+timesheetID+"/entries/"+args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	entriesCmd.AddCommand(rmCmd)

	rootCmd.AddCommand(entriesCmd)
}
