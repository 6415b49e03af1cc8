package billing

type OperationInput struct {
	EntityID     string
	ProductKey   string
	ForceFailure bool
}

type BatchInput struct {
	EntityID     string
	ProductKey   string
	Count        int
	ForceFailure bool
}
