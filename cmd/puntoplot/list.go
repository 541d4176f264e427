package main

import (
	"fmt"

	"github.com/jgoulah/puntoplot/internal/plot"
	"github.com/jgoulah/puntoplot/pkg/models"
	"github.com/spf13/cobra"
)

var listColor string

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List parsed records",
	Long: `Parses the input and prints every accepted record with its trend color.
Reads stdin when no file (or "-") is given. Lines without exactly seven
fields are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listColor, "color", "", "Only show records of this color (red or green)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listColor != "" && listColor != string(models.Red) && listColor != string(models.Green) {
		return fmt.Errorf("unknown color: %s (available: red, green)", listColor)
	}

	records, err := readRecords(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No records found")
		return nil
	}

	fmt.Fprintln(out, "------------------------------------------------------------------------------------")
	fmt.Fprintf(out, "%-20s  %-5s  %10s %10s %10s %10s %10s  %s\n", "Timestamp", "MM", "Punto1", "Punto2", "Punto3", "Punto4", "Punto5", "Color")
	fmt.Fprintln(out, "------------------------------------------------------------------------------------")

	var shown, red int
	for _, rec := range records {
		color := plot.Classify(rec)
		if listColor != "" && string(color) != listColor {
			continue
		}
		fmt.Fprintf(out, "%-20s  %-5t  %10.2f %10.2f %10.2f %10.2f %10.2f  %s\n",
			rec.Timestamp, rec.MM, rec.Punto1, rec.Punto2, rec.Punto3, rec.Punto4, rec.Punto5, color)
		shown++
		if color == models.Red {
			red++
		}
	}

	fmt.Fprintln(out, "------------------------------------------------------------------------------------")
	fmt.Fprintf(out, "Total: %d records (%d red, %d green)\n", shown, red, shown-red)
	return nil
}
