package docx

// Table is a grid of cells rendered with the TableGrid style.
type Table struct {
	Rows []*TableRow
	Cols int

	doc *Document
}

func (*Table) bodyItem() {}

// TableRow is a single row of cells.
type TableRow struct {
	Cells []*Cell
}

// Cell holds one or more paragraphs. Every cell starts with an empty
// paragraph, since OOXML requires each cell to end with one.
type Cell struct {
	Paragraphs []*Paragraph

	doc *Document
}

// AddTable appends an empty rows-by-cols table to the document body.
func (d *Document) AddTable(rows, cols int) *Table {
	t := &Table{Cols: cols, doc: d}
	for r := 0; r < rows; r++ {
		row := &TableRow{}
		for c := 0; c < cols; c++ {
			cell := &Cell{doc: d}
			cell.Paragraphs = []*Paragraph{{doc: d}}
			row.Cells = append(row.Cells, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	d.Body = append(d.Body, t)
	return t
}

// Cell returns the cell at (row, col), or nil when out of range.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r.Cells) {
		return nil
	}
	return r.Cells[col]
}

// Paragraph returns the cell's first paragraph, the usual target for content.
func (c *Cell) Paragraph() *Paragraph {
	return c.Paragraphs[0]
}

// AddParagraph appends a new paragraph to the cell.
func (c *Cell) AddParagraph() *Paragraph {
	p := &Paragraph{doc: c.doc}
	c.Paragraphs = append(c.Paragraphs, p)
	return p
}

// AddPicture embeds an image into the cell as its own paragraph.
func (c *Cell) AddPicture(path string, cx, cy int64) error {
	run, err := c.doc.newPictureRun(path, cx, cy)
	if err != nil {
		return err
	}
	p := c.AddParagraph()
	p.Children = append(p.Children, run)
	return nil
}
