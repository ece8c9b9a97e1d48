package crossref

import (
	"testing"

	"github.com/tsawler/indicia/model"
	"github.com/tsawler/indicia/outline"
)

func secItem(title string, pageIndex int, left, top float64) *outline.Item {
	return &outline.Item{Title: title, PageIndex: pageIndex, Left: left, Top: top}
}

// textLine builds a line at top-origin y on a 792-point page.
func textLine(text string, x, y, fontSize float64, fontName string) model.TextLine {
	return model.TextLine{
		Text:      text,
		X:         x,
		Y:         y,
		FontSize:  fontSize,
		FontName:  fontName,
		OriginalY: 792 - y,
	}
}

func textPage(lines ...model.TextLine) model.PageText {
	return model.PageText{Lines: lines, PageWidth: 612}
}

// mention builds an extracted reference anchored at top-origin (x, y).
func mention(typ RefType, text, targetID string, pageNumber int, x, y float64) *Ref {
	return &Ref{
		Type:       typ,
		Text:       text,
		TargetID:   targetID,
		PageNumber: pageNumber,
		Rects:      []model.BBox{model.NewBBox(x, y, 40, 10)},
	}
}

func pageAnnot(rect model.BBox, destPage int, x, y float64) model.LinkAnnotation {
	return model.LinkAnnotation{
		Rect: rect,
		Target: model.LinkTarget{
			Kind:      model.LinkTargetPage,
			PageIndex: destPage,
			View:      []float64{x, y},
		},
	}
}

// figurePages holds a plain figure mention on page 1 and its caption on
// page 5.
func figurePages() model.Pages {
	pages := make(model.Pages, 5)
	pages[0] = textPage(textLine("results appear in Figure 3 below", 50, 300, 10, "Times-Roman"))
	pages[4] = textPage(textLine("Figure 3: Model architecture", 50, 600, 10, "Times-Roman"))
	for i := 1; i < 4; i++ {
		pages[i] = textPage()
	}
	return pages
}

func TestBuildHeuristicResolution(t *testing.T) {
	pages := figurePages()
	ref := mention(Figure, "Figure 3", "3", 1, 118, 300)
	caption := mention(Figure, "Figure 3", "3", 5, 50, 600)

	result := NewBuilder(nil, pages, nil, model.SectionRange{}).Build([]*Ref{ref, caption})

	if !caption.IsDefinition {
		t.Fatal("caption not classified as definition")
	}
	if ref.IsDefinition {
		t.Error("plain mention classified as definition")
	}

	target, ok := result.Targets[targetKey(Figure, "3")]
	if !ok {
		t.Fatal("figure target not registered")
	}
	if target.PageNumber != 5 {
		t.Errorf("target page = %d, want 5", target.PageNumber)
	}

	if ref.Target == nil {
		t.Fatal("mention not resolved")
	}
	if ref.Target.PageIndex != 4 {
		t.Errorf("destination page index = %d, want 4", ref.Target.PageIndex)
	}
	if ref.Target.Y != 792-600 {
		t.Errorf("destination y = %v, want caption page position %v", ref.Target.Y, 792-600.0)
	}
	if ref.Flags.Has(NativeConfirmed) {
		t.Error("heuristically resolved mention carries native flag")
	}
}

// A native link overlapping the mention supplies the destination; the target
// map is not consulted for that mention afterwards.
func TestBuildNativeDestinationPriority(t *testing.T) {
	pages := figurePages()
	ref := mention(Figure, "Figure 3", "3", 1, 118, 300)
	caption := mention(Figure, "Figure 3", "3", 5, 50, 600)

	annots := [][]model.LinkAnnotation{
		{pageAnnot(model.NewBBox(117, 299, 44, 12), 4, 72, 640.5)},
	}

	result := NewBuilder(nil, pages, annots, model.SectionRange{}).Build([]*Ref{ref, caption})

	if !ref.Flags.Has(NativeConfirmed | DestConfirmed) {
		t.Fatal("overlapping native link did not confirm the mention")
	}
	if ref.Target == nil || ref.Target.PageIndex != 4 || ref.Target.X != 72 || ref.Target.Y != 640.5 {
		t.Errorf("destination = %+v, want native link view (page 4, 72, 640.5)", ref.Target)
	}

	// The heuristic target still exists for other mentions.
	if _, ok := result.Targets[targetKey(Figure, "3")]; !ok {
		t.Error("figure target missing")
	}
}

func TestBuildTargetFirstWins(t *testing.T) {
	pages := model.Pages{
		textPage(textLine("Table 1: First occurrence", 50, 200, 10, "Times-Roman")),
		textPage(textLine("Table 1: Reprinted", 50, 200, 10, "Times-Roman")),
	}
	first := mention(Table, "Table 1", "1", 1, 50, 200)
	second := mention(Table, "Table 1", "1", 2, 50, 200)

	result := NewBuilder(nil, pages, nil, model.SectionRange{}).Build([]*Ref{first, second})

	target := result.Targets[targetKey(Table, "1")]
	if target.PageNumber != 1 {
		t.Errorf("target page = %d, want first registration to win", target.PageNumber)
	}
}

func TestBuildGroupsPagesInVisualOrder(t *testing.T) {
	pages := model.Pages{textPage(
		textLine("see Figure 1 and Figure 2 here", 50, 100, 10, "Times-Roman"),
		textLine("and Table 3 further down", 50, 300, 10, "Times-Roman"),
	)}

	right := mention(Figure, "Figure 2", "2", 1, 200, 100)
	left := mention(Figure, "Figure 1", "1", 1, 50, 102)
	below := mention(Table, "Table 3", "3", 1, 50, 300)

	result := NewBuilder(nil, pages, nil, model.SectionRange{}).Build([]*Ref{below, right, left})

	got := result.ByPage[1]
	if len(got) != 3 {
		t.Fatalf("page 1 refs = %d, want 3", len(got))
	}
	want := []string{"Figure 1", "Figure 2", "Table 3"}
	for i, ref := range got {
		if ref.Text != want[i] {
			t.Errorf("position %d = %q, want %q", i, ref.Text, want[i])
		}
	}
}

func TestBuildSectionReference(t *testing.T) {
	items := []*outline.Item{secItem("2 Method", 3, 50, 700)}
	pages := model.Pages{textPage(textLine("as described in Section 2 above", 50, 400, 10, "Times-Roman"))}

	ref := mention(Section, "Section 2", "2", 1, 130, 400)
	NewBuilder(items, pages, nil, model.SectionRange{}).Build([]*Ref{ref})

	if ref.Target == nil || ref.Target.PageIndex != 3 {
		t.Fatalf("section reference destination = %+v, want outline page 3", ref.Target)
	}
	if ref.Target.X != 50 || ref.Target.Y != 700 {
		t.Errorf("destination position = (%v, %v), want heading position (50, 700)", ref.Target.X, ref.Target.Y)
	}
}

func TestBuildUnresolvedMentionKept(t *testing.T) {
	pages := model.Pages{textPage(textLine("see Figure 9 for a result we omit", 50, 400, 10, "Times-Roman"))}
	ref := mention(Figure, "Figure 9", "9", 1, 70, 400)

	result := NewBuilder(nil, pages, nil, model.SectionRange{}).Build([]*Ref{ref})

	if ref.Target != nil {
		t.Errorf("unresolvable mention got destination %+v", ref.Target)
	}
	if len(result.ByPage[1]) != 1 {
		t.Error("unresolved mention dropped from page grouping")
	}
}
