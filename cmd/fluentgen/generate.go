package main

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/fluentval/internal/gen"
)

const defaultOutFile = "fluentval_paths.go"

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write path constants for the struct types of a package",
		Example: `  fluentgen generate --dir ./models --type User
  fluentgen generate --dir ./models --out ./models/paths_gen.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd)
		},
	}

	f := cmd.Flags()
	f.String("dir", ".", "package directory to read")
	f.StringSlice("type", nil, "struct types to generate (default: every exported struct)")
	f.String("out", "", "output file (default: <dir>/"+defaultOutFile+")")
	f.String("package", "", "package name of the output file (default: the package read)")
	f.Bool("stdout", false, "write to stdout instead of a file")
	for _, name := range []string{"dir", "type", "out", "package", "stdout"} {
		_ = a.v.BindPFlag("generate."+name, f.Lookup(name))
	}
	return cmd
}

func (a *app) generate(cmd *cobra.Command) error {
	dir := a.v.GetString("generate.dir")
	pkg, err := gen.ParseDir(dir)
	if err != nil {
		return err
	}

	types := splitCSV(a.v.GetStringSlice("generate.type"))
	if len(types) == 0 {
		for _, name := range pkg.Structs() {
			if token.IsExported(name) {
				types = append(types, name)
			}
		}
	}
	if len(types) == 0 {
		return fmt.Errorf("generate: no exported struct types in %s", dir)
	}

	file := gen.File{Package: a.v.GetString("generate.package"), Types: make([]gen.TypeDef, 0, len(types))}
	if file.Package == "" {
		file.Package = pkg.Name
	}
	for _, name := range types {
		td, err := pkg.Collect(name)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		a.log.Debug("collected type", zap.String("type", name), zap.Int("paths", len(td.Paths)))
		file.Types = append(file.Types, td)
	}

	src, err := gen.RenderFile(file)
	if err != nil {
		return err
	}

	if a.v.GetBool("generate.stdout") {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}

	out := a.v.GetString("generate.out")
	if out == "" {
		out = filepath.Join(dir, defaultOutFile)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	a.log.Info("generated path constants", zap.String("file", out), zap.Strings("types", types))
	return nil
}

func splitCSV(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
