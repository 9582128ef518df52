package tuih

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootAddTopWiresBackReferences(t *testing.T) {
	root := NewRoot(RootConfig{}, nil, 80, 24)
	w := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "top"}})

	root.AddTop(w)

	assert.Equal(t, root, w.Root)
	assert.Nil(t, w.Parent)
	assert.Nil(t, w.Menu)
	assert.Contains(t, root.Widgets, w)
}

func TestRootAddMenuFirstBecomesActive(t *testing.T) {
	root := NewRoot(RootConfig{}, nil, 80, 24)
	first := NewMenu(MenuConfig{Name: "first"})
	second := NewMenu(MenuConfig{Name: "second"})

	root.AddMenu(first)
	root.AddMenu(second)

	assert.Equal(t, first, root.Active)
	assert.Len(t, root.Menus, 2)
}

func TestRootSwitchMenu(t *testing.T) {
	root := NewRoot(RootConfig{}, nil, 80, 24)
	root.AddMenu(NewMenu(MenuConfig{Name: "a"}))
	root.AddMenu(NewMenu(MenuConfig{Name: "b"}))

	ok := root.SwitchMenu("b")

	assert.True(t, ok)
	assert.Equal(t, "b", root.Active.Name)
	assert.False(t, root.SwitchMenu("missing"))
}

func TestRootStopClearsRunning(t *testing.T) {
	root := NewRoot(RootConfig{}, nil, 80, 24)
	assert.True(t, root.Running)
	root.Stop()
	assert.False(t, root.Running)
}

func TestRootFindAcrossTopAndActiveMenu(t *testing.T) {
	root := NewRoot(RootConfig{}, nil, 80, 24)
	top := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "top"}})
	root.AddTop(top)

	menu := NewMenu(MenuConfig{Name: "page"})
	inMenu := NewParent(ParentConfig{WidgetConfig: WidgetConfig{Name: "menu-widget"}})
	menu.AddTop(inMenu)
	root.AddMenu(menu)

	assert.Equal(t, top, root.Find("top"))
	assert.Equal(t, inMenu, root.Find("menu-widget"))
	assert.Nil(t, root.Find("nope"))
}

func TestRootLogfAppendsEntry(t *testing.T) {
	root := NewRoot(RootConfig{}, nil, 80, 24)
	root.Logf("test", "info", "value=%d", 42)

	assert.Equal(t, 1, root.Log.Len())
	assert.Contains(t, root.Log.Entry(0).Message, "value=42")
}

func TestRootDestroyFiresFreeBottomUp(t *testing.T) {
	root := NewRoot(RootConfig{}, nil, 80, 24)
	var freed []string
	parent := NewParent(ParentConfig{WidgetConfig: WidgetConfig{
		Name:  "parent",
		Hooks: Hooks{Free: func(*Widget) { freed = append(freed, "parent") }},
	}})
	child := NewText(TextConfig{WidgetConfig: WidgetConfig{
		Name:  "child",
		Hooks: Hooks{Free: func(*Widget) { freed = append(freed, "child") }},
	}})
	parent.AddChild(child)
	root.AddTop(parent)

	root.Destroy()

	assert.Equal(t, []string{"child", "parent"}, freed)
}
