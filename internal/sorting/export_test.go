package sorting

func init() {
	strictBounds = true
}
