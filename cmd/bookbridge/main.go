package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"bookbridge/internal/config"
	"bookbridge/internal/images"
	"bookbridge/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "convert":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		work := fs.String("work", "", "directory holding Books/Authors tables")
		target := fs.String("target", "", "output directory")
		imagesPath := fs.String("images", "", "cover images directory (default <target>/images)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*work) == "" || strings.TrimSpace(*target) == "" {
			must(fmt.Errorf("--work and --target are required"))
		}
		fmt.Printf("converting with work=%q target=%q\n", *work, *target)
		svc := pipeline.NewConvertService(cfg)
		stats, err := svc.Run(pipeline.ConvertOptions{
			WorkPath:   *work,
			TargetPath: *target,
			ImagesPath: *imagesPath,
		})
		must(err)
		fmt.Printf("convert done written=%d skipped=%d\n", stats.Written, stats.Skipped)
	case "images:copy":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		source := fs.String("source", "", "source images directory")
		target := fs.String("target", "", "target images directory")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*source) == "" || strings.TrimSpace(*target) == "" {
			must(fmt.Errorf("--source and --target are required"))
		}
		fmt.Printf("copying images with source=%q target=%q\n", *source, *target)
		copied, err := images.CopyAll(*source, *target)
		must(err)
		fmt.Printf("images copied=%d\n", copied)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		in := fs.String("in", "", "products csv path")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*in) == "" || strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--in and --out are required"))
		}
		rows, err := pipeline.ExportCSVToXLSX(*in, *out)
		must(err)
		fmt.Printf("exported %d rows to %s\n", rows, *out)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: bookbridge <command>")
	fmt.Println("commands:")
	fmt.Println("  convert --work=./data --target=./out [--images=./out/images]")
	fmt.Println("  images:copy --source=./raw-images --target=./out/images")
	fmt.Println("  export:xlsx --in=./out/products.csv --out=./out/products.xlsx")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
