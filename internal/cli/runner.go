package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/export"
	"github.com/idilsaglam/shoplist/internal/liststore"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/tui"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by to-buy/purchased

	// TUI is passed to the interactive program (input/output overrides).
	TUI []tea.ProgramOption
}

// Run dispatches subcommands against st and returns an exit code
// (0 ok, 1 error, 2 usage). Each call is one session: the list is loaded
// once up front and saved once when a mutating command finishes.
func Run(ctx context.Context, st *liststore.Store, args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "ls", "add", "buy", "rm", "export", "tui":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(ui.Stderr)
		PrintHelp()
		return 2
	}

	if code := load(st); code != 0 {
		return code
	}

	switch cmd {
	case "ls":
		return doList(st, opt)

	case "add":
		name, qty, ok := parseAdd(a)
		if !ok {
			ui.Fail("usage: shoplist add <name...> [-q quantity]")
			return 2
		}
		return doAdd(st, name, qty)

	case "buy", "rm":
		if len(a) != 1 {
			ui.Fail(fmt.Sprintf("usage: shoplist %s <index>", cmd))
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(cmd + ": not a number: " + a[0])
			return 2
		}
		if cmd == "buy" {
			return doToggle(st, n)
		}
		return doRemove(st, n)

	case "export":
		if len(a) < 1 || len(a) > 2 {
			ui.Fail("usage: shoplist export <" + strings.Join(export.Formats, "|") + "> [file]")
			return 2
		}
		out := ""
		if len(a) == 2 {
			out = a[1]
		}
		return doExport(st, a[0], out)
	}

	// tui: whatever ends the program, the list is saved
	err := tui.Run(ctx, st, opt.TUI...)
	if code := save(st); code != 0 {
		return code
	}
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func PrintHelp() {
	fmt.Fprintf(ui.Stdout, `shoplist - a tiny shopping list

Usage:
  shoplist [flags] <subcommand> [args]

Subcommands:
  add <name...> [-q N]   Add a product (quantity defaults to 1)
  ls                     List products
  buy <index>            Toggle purchased for product at 1-based index
  rm <index>             Remove product at 1-based index
  export <fmt> [file]    Export as json, csv or pdf (stdout if no file)
  tui                    Interactive list

Flags:
  -store json|sqlite|mysql|mem   (env SHOPLIST_STORE)
  -data-dir DIR                  (env SHOPLIST_DIR, default ~/.shoplist)
  -dsn DSN                       MySQL DSN (env SHOPLIST_DSN)
  -theme classic|neon|mono       (env SHOPLIST_THEME)
  -group                         Group ls output by to-buy/purchased

Examples:
  shoplist add Milk -q 2
  shoplist ls
  shoplist buy 1
  shoplist export pdf list.pdf
`)
}

// parseAdd splits "<name...> [-q N]"; the quantity flag may appear anywhere.
func parseAdd(a []string) (name, qty string, ok bool) {
	var words []string
	for i := 0; i < len(a); i++ {
		switch a[i] {
		case "-q", "--qty", "-qty":
			if i+1 >= len(a) {
				return "", "", false
			}
			qty = a[i+1]
			i++
		default:
			words = append(words, a[i])
		}
	}
	if len(words) == 0 {
		return "", "", false
	}
	return strings.Join(words, " "), qty, true
}

// -------------- session ----------------

func load(st *liststore.Store) int {
	_, err := st.Load()
	var de *liststore.DecodeError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &de):
		ui.Warn("stored list is unreadable, starting empty: " + de.Error())
		return 0
	default:
		ui.Fail("load: " + err.Error())
		return 1
	}
}

func save(st *liststore.Store) int {
	if err := st.Save(); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	return 0
}

// -------------- subcommand impls ----------------

func doList(st *liststore.Store, opt Options) int {
	items := st.Items()
	t := ui.Current()

	d, p := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Shopping list"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymPending), p,
		ui.C(t.Accent, "Total"), len(items),
	)

	lines := []string{header, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)), ""}
	if opt.Group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "", ui.C(t.Muted, "Tip: add with `shoplist add Milk -q 2`"))
	ui.Panel(lines)
	return 0
}

func doAdd(st *liststore.Store, name, qty string) int {
	it := st.Add(strings.TrimSpace(name), qty)
	if code := save(st); code != 0 {
		return code
	}
	ui.OK(fmt.Sprintf("added %s : %d", it.Name, it.Quantity))
	return 0
}

func doToggle(st *liststore.Store, userIndex int) int {
	it, code := at(st, userIndex)
	if code != 0 {
		return code
	}
	st.Toggle(it.ID)
	if code := save(st); code != 0 {
		return code
	}
	if it.Purchased {
		ui.OK("back on the list: " + it.Name)
	} else {
		ui.OK("purchased: " + it.Name)
	}
	return 0
}

func doRemove(st *liststore.Store, userIndex int) int {
	it, code := at(st, userIndex)
	if code != 0 {
		return code
	}
	st.Delete(it.ID)
	if code := save(st); code != 0 {
		return code
	}
	ui.OK("removed " + it.Name)
	return 0
}

func doExport(st *liststore.Store, format, path string) int {
	b, err := export.Export(st.Items(), format)
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 2
	}
	if path == "" {
		if _, err := ui.Stdout.Write(b); err != nil {
			ui.Fail("export: " + err.Error())
			return 1
		}
		return 0
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	ui.OK("exported " + path)
	return 0
}

func at(st *liststore.Store, userIndex int) (model.Item, int) {
	items := st.Items()
	if userIndex < 1 || userIndex > len(items) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(items), userIndex))
		fmt.Fprintln(ui.Stderr, ui.Dim("Hint: run `shoplist ls` to see valid indexes"))
		return model.Item{}, 2
	}
	return items[userIndex-1], 0
}

// -------------- rendering helpers --------------

func stats(items []model.Item) (purchased, pending int) {
	for _, it := range items {
		if it.Purchased {
			purchased++
		} else {
			pending++
		}
	}
	return
}

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "nothing to buy")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		out = append(out, row(i+1, it))
	}
	return out
}

// groupLines keeps each row's list index so buy/rm still line up.
func groupLines(items []model.Item) []string {
	var pend, done []string
	for i, it := range items {
		if it.Purchased {
			done = append(done, row(i+1, it))
		} else {
			pend = append(pend, row(i+1, it))
		}
	}
	t := ui.Current()
	section := func(title string, rows []string) []string {
		out := []string{ui.C(t.Accent, title)}
		if len(rows) == 0 {
			return append(out, ui.C(t.Muted, "(none)"))
		}
		return append(out, rows...)
	}
	lines := section("To buy", pend)
	lines = append(lines, "")
	return append(lines, section("Purchased", done)...)
}

func row(n int, it model.Item) string {
	t := ui.Current()
	box, color := t.BoxUnchecked, t.Muted
	if it.Purchased {
		box, color = t.BoxChecked, t.Success
	}
	name := it.Name
	if r := []rune(name); len(r) > 60 {
		name = string(r[:57]) + "..."
	}
	return fmt.Sprintf("%s %s %s : %d", ui.Dim(fmt.Sprintf("%2d.", n)), ui.C(color, box), name, it.Quantity)
}
