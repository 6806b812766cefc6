package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wanderfeast/internal/ops"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "export":
		if err := cmdExport(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "export failed:", err)
			os.Exit(1)
		}
	case "import":
		if err := cmdImport(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "import failed:", err)
			os.Exit(1)
		}
	case "verify":
		if err := cmdVerify(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "verify failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	out := fs.String("out", "", "output snapshot path (.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("snapshots", "wanderfeast-"+ts+".json")
	}

	snap, err := ops.Export(*dataDir, *out)
	if err != nil {
		return err
	}
	fmt.Println(*out)
	fmt.Println("documents:", len(snap.Documents))
	fmt.Println("checksum:", snap.Checksum)
	return nil
}

func cmdImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	snapshot := fs.String("snapshot", "", "input snapshot path (.json)")
	target := fs.String("target-dir", "data-restored", "import target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *snapshot == "" {
		return fmt.Errorf("snapshot is required")
	}

	snap, err := ops.Import(*snapshot, *target)
	if err != nil {
		return err
	}
	fmt.Println("restored:", *target)
	fmt.Println("documents:", len(snap.Documents))
	return nil
}

func cmdVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	snapshot := fs.String("snapshot", "", "snapshot path (.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *snapshot == "" {
		return fmt.Errorf("snapshot is required")
	}

	snap, err := ops.Verify(*snapshot)
	if err != nil {
		return err
	}
	fmt.Println("ok")
	fmt.Println("created:", snap.CreatedAt.Format(time.RFC3339))
	fmt.Println("documents:", len(snap.Documents))
	fmt.Println("checksum:", snap.Checksum)
	return nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  wanderfeast-ops export --data-dir data --out snapshots/snap.json")
	fmt.Println("  wanderfeast-ops import --snapshot snapshots/snap.json --target-dir data-restored")
	fmt.Println("  wanderfeast-ops verify --snapshot snapshots/snap.json")
}
