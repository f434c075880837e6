package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/attidev/storefront/internal/catalog"
	"github.com/attidev/storefront/internal/catalog/viewmodel"
	"github.com/attidev/storefront/internal/gateway"
)

var (
	listPage  int
	listQuery string
	listSort  string
	listDesc  bool

	addTitle    string
	addPrice    float64
	addBrand    string
	addCategory string
	addRating   float64
	addStock    int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List, create, and delete catalog products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		criterion, err := parseSort(listSort, listDesc)
		if err != nil {
			return err
		}

		pageSize := a.cfg.Catalog.PageSize
		if listPage < 1 {
			listPage = 1
		}
		page, err := a.gw.FetchPage(cmd.Context(), pageSize, (listPage-1)*pageSize, listQuery)
		if err != nil {
			return fmt.Errorf("failed to fetch products: %w", err)
		}

		products := viewmodel.Compose(page.Products, nil, nil, listQuery, criterion)
		pg := viewmodel.Paginate(page.Total, pageSize, listPage)

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow("ARTICLE", "NAME", "VENDOR", "CATEGORY", "RATING", "PRICE", "STOCK")
		for _, p := range products {
			vendor := p.Brand
			if vendor == "" {
				vendor = "N/A"
			}
			tbl.AddRow(
				fmt.Sprintf("ART-%d", p.ID),
				p.Title,
				vendor,
				p.Category,
				fmt.Sprintf("%.1f/5", p.Rating),
				fmt.Sprintf("%.2f", p.Price),
				strconv.Itoa(p.Stock),
			)
		}
		fmt.Fprintln(color.Output, tbl)
		if pg.Total == 0 {
			fmt.Println("no products found")
			return nil
		}
		fmt.Printf("showing %d-%d of %d (page %d/%d)\n", pg.From, pg.To, pg.Total, pg.Page, pg.TotalPages)
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		draft := catalog.Draft{
			Title:    addTitle,
			Price:    addPrice,
			Brand:    addBrand,
			Category: addCategory,
			Rating:   addRating,
			Stock:    addStock,
		}
		product, err := a.gw.Create(cmd.Context(), draft)
		if err != nil {
			var verr *catalog.DraftValidationError
			if errors.As(err, &verr) {
				for field, rule := range verr.Fields {
					fmt.Printf("  %s: %s\n", field, rule)
				}
				return errors.New("invalid product")
			}
			return fmt.Errorf("failed to create product: %w", err)
		}
		color.Green("Created %q (ART-%d)", product.Title, product.ID)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product by numeric id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.gw.Delete(cmd.Context(), id)
		if err != nil {
			var apiErr *gateway.APIError
			if errors.As(err, &apiErr) {
				return fmt.Errorf("delete failed: %s", apiErr.ServerMessage("product not found"))
			}
			return fmt.Errorf("failed to delete product: %w", err)
		}
		if !result.IsDeleted {
			return fmt.Errorf("product %d was not deleted", id)
		}
		color.Green("Deleted product %d", result.ID)
		return nil
	},
}

func parseSort(field string, desc bool) (viewmodel.Sort, error) {
	var s viewmodel.Sort
	switch viewmodel.Field(field) {
	case viewmodel.FieldNone, viewmodel.FieldName, viewmodel.FieldVendor,
		viewmodel.FieldArticle, viewmodel.FieldRating, viewmodel.FieldPrice,
		viewmodel.FieldStock:
		s.Field = viewmodel.Field(field)
	default:
		return s, fmt.Errorf("unknown sort field %q (name, vendor, article, rating, price, stock)", field)
	}
	if desc {
		s.Direction = viewmodel.Descending
	}
	return s, nil
}

func init() {
	productsListCmd.Flags().IntVar(&listPage, "page", 1, "page number, 1-based")
	productsListCmd.Flags().StringVarP(&listQuery, "query", "q", "", "search products by name")
	productsListCmd.Flags().StringVar(&listSort, "sort", "", "sort field: name, vendor, article, rating, price, stock")
	productsListCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")

	productsAddCmd.Flags().StringVar(&addTitle, "title", "", "product name")
	productsAddCmd.Flags().Float64Var(&addPrice, "price", 0, "unit price")
	productsAddCmd.Flags().StringVar(&addBrand, "brand", "", "vendor name")
	productsAddCmd.Flags().StringVar(&addCategory, "category", "", "category")
	productsAddCmd.Flags().Float64Var(&addRating, "rating", 0, "rating, 0 to 5")
	productsAddCmd.Flags().IntVar(&addStock, "stock", 0, "units in stock")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsDeleteCmd)
}
