// Command pos is the terminal point-of-sale client: browse the catalog,
// build a cart, submit orders, work the kitchen board and watch today's
// sales, all against the KitchPad backend.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kitchpad/kitchpad/client"
	"github.com/kitchpad/kitchpad/models"
	"github.com/kitchpad/kitchpad/pos"
	"github.com/kitchpad/kitchpad/utils"
)

type console struct {
	in *bufio.Reader
}

func (c *console) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

func (c *console) Notify(msg string) {
	fmt.Println("⚠ " + msg)
}

func main() {
	godotenv.Load()
	utils.InitLogger()

	baseURL := flag.String("api", "", "backend base URL (default $KITCHPAD_API_URL or http://localhost:8080/api)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui := &console{in: bufio.NewReader(os.Stdin)}
	api := client.New(*baseURL, utils.InfoLogger)
	app := pos.NewApp(api, utils.InfoLogger, ui, ui)
	board := pos.NewBoard(api, utils.InfoLogger, ui, ui)
	sales := pos.NewSalesView(api, utils.InfoLogger)

	// Background polling, same cadence as the original screens.
	go board.Watch(ctx, 10*time.Second)
	go sales.Watch(ctx, 30*time.Second)

	fmt.Println("KitchPad POS — 'help' for commands")
	for {
		fmt.Print("> ")
		line, err := ui.in.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			printHelp()
		case "menu":
			showMenu(ctx, app, args)
		case "add":
			withID(args, func(id uint) {
				p, ok := app.Product(id)
				if !ok {
					fmt.Println("no such product; run 'menu' first")
					return
				}
				app.Cart.Add(p)
				showCart(app)
			})
		case "less":
			withID(args, func(id uint) {
				app.Cart.UpdateQuantity(id, -1)
				showCart(app)
			})
		case "remove":
			withID(args, func(id uint) {
				app.Cart.Remove(id)
				showCart(app)
			})
		case "cart":
			showCart(app)
		case "clear":
			app.ClearCart()
		case "order":
			submitOrder(ctx, app)
		case "orders":
			showBoard(ctx, board)
		case "next":
			withID(args, func(id uint) { board.Advance(ctx, id) })
		case "cancel":
			withID(args, func(id uint) { board.Cancel(ctx, id) })
		case "delete":
			withID(args, func(id uint) { board.Delete(ctx, id) })
		case "sales":
			showSales(ctx, sales)
		case "products":
			showProducts(ctx, app)
		case "new":
			editProduct(ctx, ui, api, app, nil)
		case "edit":
			withID(args, func(id uint) {
				p, ok := app.Product(id)
				if !ok {
					fmt.Println("no such product; run 'products' first")
					return
				}
				editProduct(ctx, ui, api, app, &p)
			})
		case "toggle":
			withID(args, func(id uint) {
				if p, ok := app.Product(id); ok {
					app.ToggleProduct(ctx, p)
				}
			})
		case "delprod":
			withID(args, func(id uint) {
				if p, ok := app.Product(id); ok {
					app.DeleteProduct(ctx, p)
				}
			})
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q — try 'help'\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Print(`  menu [food|drink|set|other]  show the active catalog
  add/less/remove <id>         change cart quantities
  cart | clear | order         review, empty or submit the cart
  orders                       today's kitchen board
  next/cancel/delete <id>      move an order along
  sales                        today's sales summary
  products | new | edit <id>   manage the catalog
  toggle/delprod <id>          soft-disable or delete a product
  quit
`)
}

func withID(args []string, fn func(uint)) {
	if len(args) == 0 {
		fmt.Println("need an id")
		return
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Printf("bad id %q\n", args[0])
		return
	}
	fn(uint(id))
}

func showMenu(ctx context.Context, app *pos.App, args []string) {
	category := pos.CategoryAll
	if len(args) > 0 {
		category = models.ProductCategory(args[0])
	}
	products, err := app.Products(ctx, category)
	if err != nil {
		return
	}
	if len(products) == 0 {
		fmt.Println("商品がありません")
		return
	}
	for _, p := range products {
		qty := ""
		if n := app.Cart.Quantity(p.ID); n > 0 {
			qty = fmt.Sprintf("  [x%d]", n)
		}
		fmt.Printf("%3d  %-4s %-20s %s%s\n", p.ID, p.Category.Label(), p.Name, utils.FormatYen(p.UnitPrice()), qty)
	}
}

func showCart(app *pos.App) {
	if app.Cart.Empty() {
		fmt.Println("カートは空です")
		return
	}
	for _, item := range app.Cart.Items() {
		fmt.Printf("  %-20s x%d  %s\n", item.ProductName, item.Quantity,
			utils.FormatYen(item.UnitPrice()*float64(item.Quantity)))
	}
	fmt.Printf("  合計 %d点  %s\n", app.Cart.TotalItems(), utils.FormatYen(app.Cart.TotalAmount()))
}

func submitOrder(ctx context.Context, app *pos.App) {
	if app.Cart.Empty() {
		fmt.Println("カートは空です")
		return
	}
	order, err := app.SubmitOrder(ctx)
	if err != nil {
		return
	}
	fmt.Printf("✓ 注文 #%s を受け付けました\n", order.OrderNumber)
}

func showBoard(ctx context.Context, board *pos.Board) {
	if err := board.Refresh(ctx); err != nil {
		return
	}
	orders := board.Orders()
	if len(orders) == 0 {
		fmt.Println("本日の注文はありません")
		return
	}
	for _, o := range orders {
		var names []string
		for _, item := range o.Items {
			names = append(names, fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
		}
		fmt.Printf("%3d  #%s  %s  %s  %s\n", o.ID, o.OrderNumber, o.Status.Label(),
			o.CreatedDate.Local().Format("15:04"), strings.Join(names, "、"))
	}
}

func showSales(ctx context.Context, sales *pos.SalesView) {
	if _, ok := sales.Current(); !ok {
		if err := sales.Refresh(ctx); err != nil {
			fmt.Println("売上データを取得できませんでした")
			return
		}
	}
	data, _ := sales.Current()
	fmt.Printf("%s の売上: %s (注文 %d件 / 販売 %d個)\n",
		pos.FormatDay(data.Date), utils.FormatYen(data.TotalSales), data.OrderCount, data.TotalItems)
}

func showProducts(ctx context.Context, app *pos.App) {
	app.InvalidateProducts()
	products, err := app.AllProducts(ctx)
	if err != nil {
		return
	}
	for _, p := range products {
		state := ""
		if !p.IsActive {
			state = "  停止中"
		}
		fmt.Printf("%3d  %-4s %-20s %s%s\n", p.ID, p.Category.Label(), p.Name, utils.FormatYen(p.UnitPrice()), state)
	}
}

func editProduct(ctx context.Context, ui *console, api *client.Client, app *pos.App, existing *models.Product) {
	form := pos.NewProductForm(existing)

	prompt := func(label, current string) string {
		if current != "" {
			fmt.Printf("%s [%s]: ", label, current)
		} else {
			fmt.Printf("%s: ", label)
		}
		line, _ := ui.in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return current
		}
		return line
	}

	form.Name = prompt("商品名", form.Name)
	if raw := prompt("価格（円）", ""); raw != "" {
		form.SetPrice(raw)
	}
	form.Category = models.ProductCategory(prompt("カテゴリ (food/drink/set/other)", string(form.Category)))
	form.Description = prompt("説明", form.Description)

	if path := prompt("画像ファイル", ""); path != "" {
		f, err := os.Open(path)
		if err != nil {
			ui.Notify("画像を開けませんでした: " + err.Error())
		} else {
			if err := form.AttachImage(ctx, api, f.Name(), f); err != nil {
				ui.Notify("画像のアップロードに失敗しました: " + err.Error())
			}
			f.Close()
		}
	}

	product, err := form.Submit(ctx, api)
	if err != nil {
		ui.Notify("商品を保存できませんでした: " + err.Error())
		return
	}
	app.InvalidateProducts()
	fmt.Printf("✓ 保存しました: %s (id %d)\n", product.Name, product.ID)
}
