package gui

import (
	"strconv"

	"fyne.io/fyne/v2"

	"text-editor/internal/models"
)

// MenuActions extends Actions with the menu-only operations.
type MenuActions interface {
	Actions
	FindReplace()
	ToggleBold()
	ToggleItalic()
	ToggleUnderline()
	ToggleDarkMode()
	SetFontFamily(family string)
	SetFontSize(size int) error
	View() models.ViewState
}

// menuBuilder keeps the font menus' check marks in step with the view.
type menuBuilder struct {
	actions  MenuActions
	bindings []Binding
	families []string
	quit     func()
	onError  func(title string, err error)

	familyItems []*fyne.MenuItem
	sizeItems   []*fyne.MenuItem
	mainMenu    *fyne.MainMenu
}

func newMenuBuilder(actions MenuActions, bindings []Binding, families []string, quit func(), onError func(string, error)) *menuBuilder {
	return &menuBuilder{
		actions:  actions,
		bindings: bindings,
		families: families,
		quit:     quit,
		onError:  onError,
	}
}

func (b *menuBuilder) item(label string, action func()) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, action)
	item.Shortcut = shortcutFor(b.bindings, label)
	return item
}

func (b *menuBuilder) build() *fyne.MainMenu {
	a := b.actions

	fileMenu := fyne.NewMenu("File",
		b.item("New", a.New),
		b.item("Open", a.Open),
		b.item("Save", a.Save),
		b.item("Save As", a.SaveAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", b.quit),
	)
	// fyne adds its own Quit item to the first menu unless one is marked.
	fileMenu.Items[len(fileMenu.Items)-1].IsQuit = true

	editMenu := fyne.NewMenu("Edit",
		b.item("Cut", a.Cut),
		b.item("Copy", a.Copy),
		b.item("Paste", a.Paste),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Find and Replace", a.FindReplace),
	)

	formatMenu := fyne.NewMenu("Format",
		fyne.NewMenuItem("Bold", a.ToggleBold),
		fyne.NewMenuItem("Italic", a.ToggleItalic),
		fyne.NewMenuItem("Underline", a.ToggleUnderline),
	)

	fontItem := fyne.NewMenuItem("Font", nil)
	fontItem.ChildMenu = fyne.NewMenu("", b.familyMenuItems()...)

	sizeItem := fyne.NewMenuItem("Font Size", nil)
	sizeItem.ChildMenu = fyne.NewMenu("", b.sizeMenuItems()...)

	optionsMenu := fyne.NewMenu("Options",
		fontItem,
		sizeItem,
		fyne.NewMenuItem("Toggle Dark Mode", a.ToggleDarkMode),
	)

	b.mainMenu = fyne.NewMainMenu(fileMenu, editMenu, formatMenu, optionsMenu)
	b.syncChecks(a.View())
	return b.mainMenu
}

func (b *menuBuilder) familyMenuItems() []*fyne.MenuItem {
	b.familyItems = make([]*fyne.MenuItem, 0, len(b.families))
	for _, family := range b.families {
		family := family
		b.familyItems = append(b.familyItems, fyne.NewMenuItem(family, func() {
			b.actions.SetFontFamily(family)
		}))
	}
	return b.familyItems
}

func (b *menuBuilder) sizeMenuItems() []*fyne.MenuItem {
	sizes := models.FontSizes()
	b.sizeItems = make([]*fyne.MenuItem, 0, len(sizes))
	for _, size := range sizes {
		size := size
		b.sizeItems = append(b.sizeItems, fyne.NewMenuItem(strconv.Itoa(size), func() {
			if err := b.actions.SetFontSize(size); err != nil {
				b.onError("Font Size", err)
			}
		}))
	}
	return b.sizeItems
}

// syncChecks marks the current family and size. It reports whether any
// mark changed.
func (b *menuBuilder) syncChecks(view models.ViewState) bool {
	family := view.FontFamily
	if family == "" {
		family = DefaultFamily
	}

	changed := false
	for _, item := range b.familyItems {
		checked := item.Label == family
		changed = changed || item.Checked != checked
		item.Checked = checked
	}
	current := strconv.Itoa(view.FontSize)
	for _, item := range b.sizeItems {
		checked := item.Label == current
		changed = changed || item.Checked != checked
		item.Checked = checked
	}
	return changed
}
