package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/hejia-v/atom/layout"
	"github.com/hejia-v/atom/object"
)

func main() {
	var (
		typeName    = flag.String("type", "", "Type to inspect (optional)")
		list        = flag.Bool("list", false, "List registered types and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		object.SetLogger(logger)
	}

	reg, err := demoRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(reg, *typeName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// demoRegistry defines a small type hierarchy to browse.
func demoRegistry() (*object.Registry, error) {
	reg := object.NewRegistry()

	if _, err := reg.Define("Point", nil, []layout.Member{
		{Name: "x", Default: layout.Value(0.0)},
		{Name: "y", Default: layout.Value(0.0)},
	}); err != nil {
		return nil, err
	}

	if _, err := reg.Define("Point3D", []string{"Point"}, []layout.Member{
		{Name: "z", Default: layout.Value(0.0)},
	}); err != nil {
		return nil, err
	}

	if _, err := reg.Define("Person", nil, []layout.Member{
		{Name: "name", Default: layout.Value("")},
		{Name: "height", Default: layout.Value(0.0)},
		{Name: "weight", Default: layout.Value(0.0)},
	}); err != nil {
		return nil, err
	}

	if _, err := reg.Define("Employee", []string{"Person"}, []layout.Member{
		{Name: "name", Default: layout.Value("unknown")},
		{Name: "badge", Default: layout.Value(0)},
	}); err != nil {
		return nil, err
	}

	if _, err := reg.Define("Note", nil, []layout.Member{
		{Name: "title", Default: layout.Value("")},
	}, object.WithDynamicOverflow()); err != nil {
		return nil, err
	}

	return reg, nil
}

func run(reg *object.Registry, typeName string, listOnly bool) error {
	names := reg.Names()
	fmt.Printf("Registered types: %d\n\n", len(names))

	for _, name := range names {
		t, _ := reg.Get(name)
		fmt.Println(formatType(t))
	}

	if listOnly || typeName == "" {
		return nil
	}

	t, ok := reg.Get(typeName)
	if !ok {
		return fmt.Errorf("type %q is not registered", typeName)
	}

	fmt.Printf("\nLayout of %s:\n", t.Name())
	fmt.Println(formatLayout(t))
	return nil
}

func formatType(t *object.Type) string {
	var bases []string
	for _, b := range t.Bases() {
		bases = append(bases, b.Name())
	}
	suffix := ""
	if len(bases) > 0 {
		suffix = "(" + strings.Join(bases, ", ") + ")"
	}
	overflow := ""
	if t.HasDynamicOverflow() {
		overflow = " +overflow"
	}
	return fmt.Sprintf("  %s%s: %d slots%s", t.Name(), suffix, t.SlotCount(), overflow)
}

func formatLayout(t *object.Type) string {
	var b strings.Builder
	t.Layout().Each(func(s layout.Slot) bool {
		fmt.Fprintf(&b, "  [%d] %-12s declared by %s\n", s.Index, s.Member.Name, s.Member.Owner)
		return true
	})
	return strings.TrimSuffix(b.String(), "\n")
}
