package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	BooksFile   string
	AuthorsFile string
	ImagesDir   string

	ProductsFile string
	SkippedFile  string

	DefaultCategory string
	CategoryMapFile string

	BaseKeywords    []string
	MetaAttribution string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BooksFile:   getEnv("BOOKS_FILE", "Books.csv"),
		AuthorsFile: getEnv("AUTHORS_FILE", "Authors.csv"),
		ImagesDir:   getEnv("IMAGES_DIR", "images"),

		ProductsFile: getEnv("PRODUCTS_FILE", "products.csv"),
		SkippedFile:  getEnv("SKIPPED_FILE", "skipped-records.txt"),

		DefaultCategory: getEnv("DEFAULT_CATEGORY", "Default Category/Books/Other"),
		CategoryMapFile: getEnv("CATEGORY_MAP_FILE", ""),

		BaseKeywords:    getEnvList("BASE_KEYWORDS", []string{"Western Australia", "History"}),
		MetaAttribution: getEnv("META_ATTRIBUTION", "from the Western Australian history bookshop."),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
