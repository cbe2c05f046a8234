package solitaire

import "testing"

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNodeContainsLocal(t *testing.T) {
	sprite := NewSprite("s", nil, 37, 52)
	if !nodeContainsLocal(sprite, 36, 51) {
		t.Error("sprite should contain point inside its size")
	}
	if nodeContainsLocal(sprite, 38, 10) {
		t.Error("sprite should not contain point outside its size")
	}
	if nodeContainsLocal(NewContainer("c"), 0, 0) {
		t.Error("container without HitShape should not be hit")
	}
	if !nodeContainsLocal(NewZone("z", 10, 10), 5, 5) {
		t.Error("zone should be hit inside its HitRect")
	}
}

// headlessSprite adds an interactive sprite of w x h at (x, y) under parent.
func headlessSprite(parent *Node, name string, x, y, w, h float64) *Node {
	n := NewSprite(name, nil, w, h)
	n.SetPosition(x, y)
	n.Interactable = true
	parent.AddChild(n)
	return n
}

func TestHitTest(t *testing.T) {
	s := NewScene()
	a := headlessSprite(s.Root(), "a", 0, 0, 100, 100)
	b := headlessSprite(s.Root(), "b", 0, 0, 100, 100)
	updateWorldTransform(s.root, identityTransform, 1, false)

	if hit := s.hitTest(50, 50); hit != b {
		t.Errorf("topmost = %v, want b", hit)
	}

	a.SetZIndex(1)
	if hit := s.hitTest(50, 50); hit != a {
		t.Errorf("after raising a, topmost = %v, want a", hit)
	}

	b.Visible = false
	a.Interactable = false
	if hit := s.hitTest(50, 50); hit != nil {
		t.Errorf("hidden and non-interactable nodes hit: %v", hit)
	}
}

func TestHitTestRaisedContainer(t *testing.T) {
	s := NewScene()
	low := NewContainer("low")
	high := NewContainer("high")
	s.Root().AddChild(low)
	s.Root().AddChild(high)
	under := headlessSprite(low, "under", 0, 0, 50, 50)
	headlessSprite(high, "over", 0, 0, 50, 50)
	updateWorldTransform(s.root, identityTransform, 1, false)

	low.SetZIndex(2)
	if hit := s.hitTest(10, 10); hit != under {
		t.Errorf("hit = %v, want child of raised container", hit)
	}
}

func TestHitTestSkipsHiddenSubtree(t *testing.T) {
	s := NewScene()
	group := NewContainer("group")
	s.Root().AddChild(group)
	headlessSprite(group, "child", 0, 0, 50, 50)
	group.SetVisible(false)
	updateWorldTransform(s.root, identityTransform, 1, false)

	if hit := s.hitTest(10, 10); hit != nil {
		t.Errorf("hit inside hidden subtree: %v", hit)
	}
}

func TestHitTestScaledNode(t *testing.T) {
	s := NewScene()
	n := headlessSprite(s.Root(), "card", 10, 10, 37, 52)
	n.SetScale(1.5, 1.5)
	updateWorldTransform(s.root, identityTransform, 1, false)

	if hit := s.hitTest(10+50, 10+70); hit != n {
		t.Error("scaled extent should be hit")
	}
	if hit := s.hitTest(10+60, 10+10); hit != nil {
		t.Error("point beyond scaled width should miss")
	}
}

func TestSceneCallbacksBeforeNodeCallbacks(t *testing.T) {
	s := NewScene()
	n := headlessSprite(s.Root(), "n", 0, 0, 100, 100)
	updateWorldTransform(s.root, identityTransform, 1, false)

	var order []string
	s.OnPointerDown(func(PointerContext) { order = append(order, "scene") })
	n.OnPointerDown = func(ctx PointerContext) {
		order = append(order, "node")
		if ctx.LocalX != 10 || ctx.LocalY != 20 {
			t.Errorf("local = %v,%v, want 10,20", ctx.LocalX, ctx.LocalY)
		}
	}

	s.processPointer(0, 10, 20, true, MouseButtonLeft)
	if !equalStrings(order, []string{"scene", "node"}) {
		t.Errorf("order = %v", order)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	s := NewScene()
	var count int
	h := s.OnPointerDown(func(PointerContext) { count++ })
	s.OnPointerDown(func(PointerContext) { count += 10 })

	s.processPointer(0, 0, 0, true, MouseButtonLeft)
	s.processPointer(0, 0, 0, false, MouseButtonLeft)
	h.Remove()
	h.Remove() // second remove is a no-op
	s.processPointer(0, 0, 0, true, MouseButtonLeft)

	if count != 21 {
		t.Errorf("count = %d, want 21", count)
	}
	CallbackHandle{}.Remove()
}

func recordDrags(s *Scene) *[]string {
	var events []string
	s.OnDragStart(func(DragContext) { events = append(events, "dragstart") })
	s.OnDrag(func(DragContext) { events = append(events, "drag") })
	s.OnDragEnd(func(DragContext) { events = append(events, "dragend") })
	return &events
}

func TestDragDetection(t *testing.T) {
	s := NewScene()
	n := headlessSprite(s.Root(), "n", 0, 0, 100, 100)
	n.Draggable = true
	updateWorldTransform(s.root, identityTransform, 1, false)
	events := recordDrags(s)

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 52, 52, true, MouseButtonLeft)
	if len(*events) != 0 {
		t.Fatalf("events inside dead zone: %v", *events)
	}

	s.processPointer(0, 60, 50, true, MouseButtonLeft)
	if !equalStrings(*events, []string{"dragstart", "drag"}) {
		t.Fatalf("events = %v, want [dragstart drag]", *events)
	}

	*events = (*events)[:0]
	s.processPointer(0, 70, 50, true, MouseButtonLeft)
	s.processPointer(0, 70, 50, false, MouseButtonLeft)
	if !equalStrings(*events, []string{"drag", "dragend"}) {
		t.Errorf("events = %v, want [drag dragend]", *events)
	}
}

func TestNoDragWhenNotDraggable(t *testing.T) {
	s := NewScene()
	headlessSprite(s.Root(), "n", 0, 0, 100, 100)
	updateWorldTransform(s.root, identityTransform, 1, false)
	events := recordDrags(s)

	s.processPointer(0, 10, 10, true, MouseButtonLeft)
	s.processPointer(0, 80, 80, true, MouseButtonLeft)
	s.processPointer(0, 80, 80, false, MouseButtonLeft)
	if len(*events) != 0 {
		t.Errorf("non-draggable node emitted %v", *events)
	}
}

func TestClickDetection(t *testing.T) {
	tests := []struct {
		name      string
		releaseX  float64
		draggable bool
		want      bool
	}{
		{"same node", 50, false, true},
		{"released elsewhere", 150, false, false},
		{"after drag", 80, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			n := headlessSprite(s.Root(), "n", 0, 0, 100, 100)
			n.Draggable = tt.draggable
			updateWorldTransform(s.root, identityTransform, 1, false)

			var clicked bool
			s.OnClick(func(ctx ClickContext) { clicked = ctx.Node == n })

			s.processPointer(0, 50, 50, true, MouseButtonLeft)
			s.processPointer(0, tt.releaseX, 50, true, MouseButtonLeft)
			s.processPointer(0, tt.releaseX, 50, false, MouseButtonLeft)
			if clicked != tt.want {
				t.Errorf("clicked = %v, want %v", clicked, tt.want)
			}
		})
	}
}

func TestDragContextKeepsGrabOffset(t *testing.T) {
	s := NewScene()
	pile := NewContainer("pile")
	pile.SetPosition(100, 50)
	s.Root().AddChild(pile)
	card := headlessSprite(pile, "card", 0, 20, 40, 40)
	card.Draggable = true
	updateWorldTransform(s.root, identityTransform, 1, false)

	var last DragContext
	s.OnDrag(func(ctx DragContext) { last = ctx })

	// Grab 10,5 inside the card.
	s.processPointer(0, 110, 75, true, MouseButtonLeft)
	s.processPointer(0, 130, 105, true, MouseButtonLeft)

	assertNear(t, "DragX", last.DragX, 20)
	assertNear(t, "DragY", last.DragY, 50)
	assertNear(t, "DeltaX", last.DeltaX, 20)
	assertNear(t, "DeltaY", last.DeltaY, 30)
	if last.StartX != 110 || last.StartY != 75 {
		t.Errorf("start = %v,%v, want 110,75", last.StartX, last.StartY)
	}
}

func TestSetDragDeadZone(t *testing.T) {
	s := NewScene()
	n := headlessSprite(s.Root(), "n", 0, 0, 200, 200)
	n.Draggable = true
	updateWorldTransform(s.root, identityTransform, 1, false)
	events := recordDrags(s)

	s.SetDragDeadZone(20)
	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 60, 50, true, MouseButtonLeft)
	if len(*events) != 0 {
		t.Fatalf("drag started inside enlarged dead zone: %v", *events)
	}
	s.processPointer(0, 75, 50, true, MouseButtonLeft)
	if len(*events) == 0 || (*events)[0] != "dragstart" {
		t.Errorf("events = %v, want dragstart", *events)
	}
}

func TestInputLockedBlocksPress(t *testing.T) {
	s := NewScene()
	headlessSprite(s.Root(), "n", 0, 0, 100, 100)
	updateWorldTransform(s.root, identityTransform, 1, false)

	var downs int
	s.OnPointerDown(func(PointerContext) { downs++ })

	s.SetInputLocked(true)
	s.processPointer(0, 10, 10, true, MouseButtonLeft)
	s.processPointer(0, 10, 10, false, MouseButtonLeft)
	s.SetInputLocked(false)
	s.processPointer(0, 10, 10, true, MouseButtonLeft)

	if downs != 1 {
		t.Errorf("downs = %d, want 1", downs)
	}
	if !s.pointers[0].down {
		t.Error("unlocked press should be tracked")
	}
}
