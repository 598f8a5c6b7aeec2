package tags

import "github.com/yohamta/donburi"

var (
	Spark = donburi.NewTag().SetName("Spark")
	Hero  = donburi.NewTag().SetName("Hero")
)

// Resolv tags
const (
	ResolvContainer = "container"
)
