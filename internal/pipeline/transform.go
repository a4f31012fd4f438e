package pipeline

import (
	"strconv"
	"strings"
	"time"

	"bookbridge/internal"
	"bookbridge/internal/catalog"
	"bookbridge/internal/config"
	"bookbridge/internal/util"
)

// timeLayout is the date-time layout the importer expects.
const timeLayout = "2006-01-02 15:04:05"

const reasonNoRRP = "RRP is zero or missing"

// Transformer derives one output row (or one skip record) per book
// row. It closes over the fully built author index, the image
// directory snapshot and the category table; it holds no per-row
// state, so rows are independent of one another.
type Transformer struct {
	cfg        config.Config
	authors    catalog.AuthorIndex
	images     *catalog.ImageSet
	categories *catalog.CategoryMapper

	// now is the clock used for missing-date fallbacks.
	now func() time.Time
}

func NewTransformer(cfg config.Config, authors catalog.AuthorIndex, images *catalog.ImageSet, categories *catalog.CategoryMapper) *Transformer {
	return &Transformer{
		cfg:        cfg,
		authors:    authors,
		images:     images,
		categories: categories,
		now:        time.Now,
	}
}

// Transform validates and derives one book row. Exactly one of the two
// return values is non-nil. It never fails: malformed numbers and
// dates fall back to zero / now.
func (t *Transformer) Transform(book internal.BookRecord) (ProductRow, *internal.SkipRecord) {
	price, ok := util.ParsePrice(book.RRP)
	if !ok || price.IsZero() {
		return nil, &internal.SkipRecord{
			Code:   book.Code,
			Title:  util.NormalizeTitle(book.Title),
			Reason: reasonNoRRP,
		}
	}

	// The decimal parse is for validation only; the row carries the
	// listed price text through verbatim so "12.00" stays "12.00".
	priceText := strings.TrimSpace(book.RRP)

	title := util.NormalizeTitle(book.Title)
	categoryPath := t.categories.Map(book.Category)
	author := t.authors[strings.TrimSpace(book.AuthorID)]
	cover := strings.TrimSpace(book.Cover)
	imageFilename, hasImage := t.images.Resolve(book.Code)
	stock := util.ParseStock(book.Stock)
	now := t.now()

	row := NewProductRow()
	row["sku"] = "BOOK-" + book.Code
	row["categories"] = categoryPath
	row["name"] = title
	row["description"] = book.Description
	row["price"] = priceText
	row["msrp_price"] = priceText
	row["url_key"] = util.URLKey(title, book.Code)
	row["meta_title"] = title
	row["meta_keywords"] = t.keywords(categoryPath, author)
	row["meta_description"] = t.metaDescription(title, author, cover)
	row["additional_attributes"] = attributePairs(author, cover)
	row["qty"] = strconv.Itoa(util.ClampQty(stock))
	row["is_in_stock"] = strconv.Itoa(util.StockFlag(stock))
	row["created_at"] = util.EarliestOr(now,
		book.FirstOrderDate, book.LastSaleDate, book.LastUpdate, book.StocktakeDate,
	).Format(timeLayout)
	row["updated_at"] = updatedAt(book.LastUpdate, now)

	imageLabel := ""
	if hasImage {
		imageLabel = "Cover of " + title
	}
	row["base_image"] = imageFilename
	row["base_image_label"] = imageLabel
	row["small_image"] = imageFilename
	row["small_image_label"] = imageLabel
	row["thumbnail_image"] = imageFilename
	row["thumbnail_image_label"] = imageLabel

	return row, nil
}

func (t *Transformer) keywords(categoryPath, author string) string {
	tags := make([]string, 0, len(t.cfg.BaseKeywords)+2)
	tags = append(tags, t.cfg.BaseKeywords...)
	if leaf := catalog.Leaf(categoryPath); leaf != "" {
		tags = append(tags, leaf)
	}
	if author != "" {
		tags = append(tags, author)
	}
	return strings.Join(tags, ";")
}

func (t *Transformer) metaDescription(title, author, cover string) string {
	var b strings.Builder
	b.WriteString(`Buy "` + title + `"`)
	if author != "" {
		b.WriteString(" by " + author)
	}
	if cover != "" {
		b.WriteString(" in " + cover)
	}
	b.WriteString(" " + t.cfg.MetaAttribution)
	return b.String()
}

func attributePairs(author, cover string) string {
	pairs := make([]string, 0, len(fixedAttributePairs)+2)
	pairs = append(pairs, fixedAttributePairs...)
	if author != "" {
		pairs = append(pairs, "author="+author)
	}
	if cover != "" {
		pairs = append(pairs, "cover="+cover)
	}
	return strings.Join(pairs, ";")
}

func updatedAt(lastUpdate string, now time.Time) string {
	if t, ok := util.ParseDate(lastUpdate); ok {
		return t.Format(timeLayout)
	}
	return now.Format(timeLayout)
}
