package response_models

type MenuNode struct {
	ID       uint
	Name     string
	Slug     string
	Active   bool
	Expanded bool
	Children []*MenuNode
}
