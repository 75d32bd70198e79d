package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	timesheetsCmd := &cobra.Command{Use: "timesheets", Short: "Timesheet operations"}

	// list
	var startDate, endDate, status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List timesheets, optionally filtered by date range and status",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := newClient().R()
			if startDate != "" {
				req.SetQueryParam("startDate", startDate)
			}
			if endDate != "" {
				req.SetQueryParam("endDate", endDate)
			}
			if status != "" {
				req.SetQueryParam("status", status)
			}
			data, err := do(req, http.MethodGet, "/api/timesheets")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().StringVar(&startDate, "start", "", "Filter start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&endDate, "end", "", "Filter end date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&status, "status", "", "Filter status (COMPLETED|INCOMPLETE|MISSING)")
	timesheetsCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get TIMESHEET_ID",
		Short: "Get a timesheet by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := do(newClient().R(), http.MethodGet, "/api/timesheets/"+args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	timesheetsCmd.AddCommand(getCmd)

	// create
	var week int
	var start, end string
	var hours float64
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a timesheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"week": week, "startDate": start, "endDate": end, "hours": hours,
			}
			data, err := do(newClient().R().SetBody(payload), http.MethodPost, "/api/timesheets")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().IntVarP(&week, "week", "w", 0, "Week number (required)")
	createCmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (required)")
	createCmd.Flags().StringVar(&end, "end", "", "End date YYYY-MM-DD (required)")
	createCmd.Flags().Float64Var(&hours, "hours", 0, "Logged hours")
	_ = createCmd.MarkFlagRequired("week")
	_ = createCmd.MarkFlagRequired("start")
	_ = createCmd.MarkFlagRequired("end")
	timesheetsCmd.AddCommand(createCmd)

	// update
	var uWeek int
	var uStart, uEnd string
	var uHours float64
	updateCmd := &cobra.Command{
		Use:   "update TIMESHEET_ID",
		Short: "Replace a timesheet's week, dates and hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{
				"week": uWeek, "startDate": uStart, "endDate": uEnd, "hours": uHours,
			}
			data, err := do(newClient().R().SetBody(payload), http.MethodPut, "/api/timesheets/"+args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	updateCmd.Flags().IntVarP(&uWeek, "week", "w", 0, "Week number (required)")
	updateCmd.Flags().StringVar(&uStart, "start", "", "Start date YYYY-MM-DD (required)")
	updateCmd.Flags().StringVar(&uEnd, "end", "", "End date YYYY-MM-DD (required)")
	updateCmd.Flags().Float64Var(&uHours, "hours", 0, "Logged hours")
	_ = updateCmd.MarkFlagRequired("week")
	_ = updateCmd.MarkFlagRequired("start")
	_ = updateCmd.MarkFlagRequired("end")
	timesheetsCmd.AddCommand(updateCmd)

	rootCmd.AddCommand(timesheetsCmd)
}
