package port

import "context"

// CountInput carries the data needed to count the pages of one file.
type CountInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// PageCounter determines how many printable pages a file has. It never
// fails: 0 means the count could not be determined.
type PageCounter interface {
	CountPages(ctx context.Context, input CountInput) int
	// CountAll counts every input and returns the counts in input order.
	CountAll(ctx context.Context, inputs []CountInput) []int
}
