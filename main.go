// Command lumentrace is the interactive CLI shell around the renderer: it
// prompts for a scene stem, loads jsons/<stem>.json, renders it, and
// writes the result to outdir/<stem>.ppm.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"github.com/urfave/cli"

	"github.com/cwallin/lumentrace/pkg/ppmio"
	"github.com/cwallin/lumentrace/pkg/render"
	"github.com/cwallin/lumentrace/pkg/sceneio"
)

func main() {
	defer glog.Flush()

	app := cli.NewApp()
	app.Name = "lumentrace"
	app.Usage = "render JSON scene documents to PPM images"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "jsons",
			Value: "jsons",
			Usage: "directory containing <stem>.json scene documents",
		},
		cli.StringFlag{
			Name:  "textures",
			Value: "textures",
			Usage: "directory containing <stem>.ppm input textures",
		},
		cli.StringFlag{
			Name:  "outdir",
			Value: "output",
			Usage: "directory PPM renders are written to",
		},
	}
	app.Action = runMenu

	if err := app.Run(os.Args); err != nil {
		glog.Errorf("lumentrace: %v", err)
		os.Exit(1)
	}
}

// runMenu implements the interactive text menu: it reads a scene stem per
// line from stdin until the user types "exit".
func runMenu(c *cli.Context) error {
	jsonsDir := c.String("jsons")
	texturesDir := c.String("textures")
	outDir := c.String("outdir")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("scene> ")
		if !scanner.Scan() {
			break
		}
		stem := scanner.Text()
		if stem == "exit" {
			return nil
		}
		if stem == "" {
			continue
		}

		renderOne(jsonsDir, texturesDir, outDir, stem)
	}

	return scanner.Err()
}

// renderOne loads, renders and writes a single scene. Every failure is an
// input error: it is reported and the menu loop continues, the output
// file is not written.
func renderOne(jsonsDir, texturesDir, outDir, stem string) {
	scenePath := filepath.Join(jsonsDir, stem+".json")

	s, err := sceneio.LoadFile(scenePath, texturesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", scenePath, err)
		return
	}

	glog.Infof("rendering %s: %dx%d", stem, s.Width, s.Height)
	start := time.Now()

	seed := time.Now().UnixNano()
	pixels := render.Render(s, seed)

	glog.Infof("rendered %s in %s", stem, time.Since(start))

	outPath := filepath.Join(outDir, stem+".ppm")
	if err := ppmio.WritePPMFile(outPath, s.Width, s.Height, pixels); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", outPath, err)
		return
	}

	fmt.Printf("wrote %s\n", outPath)
}
