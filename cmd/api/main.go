package main

import (
	"os"

	_ "resume-intake/docs" // Swagger docs
)

// @title Resume Intake API
// @version 1.0
// @description Resume upload, skill search, keyword ranking and shortlisting for recruiters

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
