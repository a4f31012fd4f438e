package pipeline

// productColumns is the importer's expected column order. One canonical
// template covers every export: the transformer overrides the handful
// of derived fields and everything else ships as a fixed default.
var productColumns = []string{
	"sku",
	"store_view_code",
	"attribute_set_code",
	"product_type",
	"categories",
	"product_websites",
	"name",
	"description",
	"short_description",
	"weight",
	"product_online",
	"tax_class_name",
	"visibility",
	"price",
	"special_price",
	"special_price_from_date",
	"special_price_to_date",
	"url_key",
	"meta_title",
	"meta_keywords",
	"meta_description",
	"base_image",
	"base_image_label",
	"small_image",
	"small_image_label",
	"thumbnail_image",
	"thumbnail_image_label",
	"created_at",
	"updated_at",
	"new_from_date",
	"new_to_date",
	"display_product_options_in",
	"map_price",
	"msrp_price",
	"map_enabled",
	"gift_message_available",
	"custom_design",
	"custom_design_from",
	"custom_design_to",
	"custom_layout_update",
	"page_layout",
	"product_options_container",
	"msrp_display_actual_price_type",
	"country_of_manufacture",
	"additional_attributes",
	"qty",
	"out_of_stock_qty",
	"use_config_min_qty",
	"is_qty_decimal",
	"allow_backorders",
	"use_config_backorders",
	"min_cart_qty",
	"use_config_min_sale_qty",
	"max_cart_qty",
	"use_config_max_sale_qty",
	"is_in_stock",
	"notify_on_stock_below",
	"use_config_notify_stock_qty",
	"manage_stock",
	"use_config_manage_stock",
	"qty_increments",
	"use_config_qty_increments",
	"enable_qty_increments",
	"use_config_enable_qty_inc",
	"is_decimal_divided",
	"website_id",
	"deferred_stock_update",
	"use_config_deferred_stock_update",
	"related_skus",
	"crosssell_skus",
	"upsell_skus",
	"additional_images",
	"additional_image_labels",
	"hide_from_product_page",
	"custom_options",
}

// productDefaults holds the catalog constants. Columns absent here
// default to the empty string.
var productDefaults = map[string]string{
	"attribute_set_code":               "Default",
	"product_type":                     "simple",
	"product_websites":                 "base",
	"weight":                           "1",
	"product_online":                   "1",
	"tax_class_name":                   "Taxable Goods",
	"visibility":                       "Catalog, Search",
	"display_product_options_in":       "Block after Info Column",
	"msrp_display_actual_price_type":   "Use config",
	"country_of_manufacture":           "Australia",
	"out_of_stock_qty":                 "0",
	"use_config_min_qty":               "1",
	"is_qty_decimal":                   "0",
	"allow_backorders":                 "0",
	"use_config_backorders":            "1",
	"min_cart_qty":                     "1",
	"use_config_min_sale_qty":          "1",
	"max_cart_qty":                     "0",
	"use_config_max_sale_qty":          "1",
	"use_config_notify_stock_qty":      "1",
	"manage_stock":                     "1",
	"use_config_manage_stock":          "1",
	"qty_increments":                   "0",
	"use_config_qty_increments":        "1",
	"enable_qty_increments":            "0",
	"use_config_enable_qty_inc":        "1",
	"is_decimal_divided":               "0",
	"website_id":                       "1",
	"deferred_stock_update":            "0",
	"use_config_deferred_stock_update": "1",
}

// fixedAttributePairs seed every row's additional_attributes column.
var fixedAttributePairs = []string{
	"has_options=0",
	"is_returnable=Use config",
	"quantity_and_stock_status=In stock",
	"required_options=0",
}

// ProductRow is one output row, keyed by column name.
type ProductRow map[string]string

// NewProductRow returns a row pre-filled with the catalog defaults.
func NewProductRow() ProductRow {
	row := make(ProductRow, len(productColumns))
	for _, col := range productColumns {
		row[col] = productDefaults[col]
	}
	return row
}

// ProductColumns returns the output column order.
func ProductColumns() []string {
	out := make([]string, len(productColumns))
	copy(out, productColumns)
	return out
}

// Values renders the row in column order.
func (r ProductRow) Values() []string {
	out := make([]string, len(productColumns))
	for i, col := range productColumns {
		out[i] = r[col]
	}
	return out
}
