// Package pintui provides consistent terminal output for command line
// programs: status messages, layout helpers and progress indicators that
// share one set of icons, colors and spacing.
//
// # Printers
//
// Every function writes through a Printer bound to an io.Writer. The
// package-level functions use the default printer on stdout, created on
// first use from the environment:
//
//	PINTUI_COLOR    auto, always or never
//	NO_COLOR        disables color when set
//	CLICOLOR=0      disables color
//	CLICOLOR_FORCE  enables color when set to anything but 0
//
// Build a printer over a buffer for tests or to redirect output:
//
//	var buf bytes.Buffer
//	p := pintui.NewPrinter(&buf, pintui.WithColor(false))
//	p.Success("Done")
//
// # Messages and Layout
//
//	pintui.Info("Processing 42 files...")   // ℹ Processing 42 files...
//	pintui.Success("All tests passed")      // ✓ All tests passed
//	pintui.Warn("Using defaults")           // ⚠ Using defaults
//	pintui.Error("Connection refused")      // ✗ Connection refused
//	pintui.Header("Configuration")
//	pintui.KV("Version", "1.0.0")           //   Version: 1.0.0
//	pintui.Step(1, 3, "Fetching")           // [1/3] Fetching
//
// # Progress
//
// Spinners animate only when the writer is a terminal. A spinner stops
// exactly once; use Close or WithSpinner to guarantee it:
//
//	s := pintui.Spinner("Connecting...")
//	defer s.Close()
//	s.Success("Connected")
//
// StageProgress numbers a sequence of spinners:
//
//	stages := pintui.NewStageProgress(3)
//	stages.Next("Downloading").Success("Downloaded")   // ✓ [1/3] Downloaded
//	stages.Skip("Verifying")                           //   ○ [2/3] Verifying (skipped)
//
// # Formatting
//
//	pintui.HumanSize(1536)                  // "1.5 KB"
//	pintui.ParseSize("1.5GB")               // 1610612736
//	pintui.HumanDuration(90 * time.Second)  // "1m 30s"
//	pintui.TruncatePath("/a/b/c/file.txt", 12)
package pintui
