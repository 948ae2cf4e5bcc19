// Package ui provides terminal UI components for the auction scanner
// This file demonstrates example usage of the UI components
package ui

/*
Example usage of the UI components:

// Terminal colors and output
ui.PrintBanner()                                 // Print ASCII banner
ui.PrintInfo("Venue", "simulated auction house") // Cyan label, yellow value
ui.PrintSuccess("Scan completed!")               // Green success message
ui.PrintError("Scan failed", err)                // Red error message
ui.PrintWarning("Query budget low")              // Yellow warning message
ui.PrintHighlight("[SCANNING]")                  // Magenta highlight message

// In-place scan progress (implements ui.Monitor)
display := ui.NewScanDisplay(false)
display.ScanStarted(ctrl.Snapshot())
display.ScanProgress(ctrl.Snapshot())            // Redraw after each page
display.ScanCompleted(entry)                     // Completion summary
display.ScanCancelled(ctrl.Snapshot())

// Session tracking across several scans
tracker := ui.NewStatusTracker()
tracker.RecordScan(entry.ItemCount)              // Add a completed scan
tracker.PrintStatus()                            // Running totals line
fmt.Println(ui.RenderBar(75, 20))                // [███████████████░░░░░]

// Notifications by configured type: "terminal", "desktop", "none"
notifier := ui.NewNotifier("desktop")
notifier.SendSuccess("Scan complete", "237 items recorded")
notifier.SendError("Scan cancelled", "venue window closed")

// Direct color usage
fmt.Printf("%s: %s\n", ui.Cyan("Owner"), ui.Yellow("Grimtotem"))
fmt.Println(ui.Green("✓ 237 items"))
fmt.Println(ui.Red("✗ cancelled"))
*/
