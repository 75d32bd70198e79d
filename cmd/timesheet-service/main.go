package main

import (
	"os"

	"github.com/clockbook/clockbook/server/timesheetservice"
)

func main() {
	if err := timesheetservice.Run(); err != nil {
		os.Exit(1)
	}
}
