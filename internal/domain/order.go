package domain

// Order bir müşterinin yayınladığı iş ilanıdır. customer_id ve executor_id
// mantıksal referanslardır; uygulama katmanında varlıkları doğrulanmaz.
type Order struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	CustomerID  int64   `json:"customer_id"`
	ExecutorID  *int64  `json:"executor_id"`
}

func ParseOrder(data []byte) (*Order, error) {
	fields, err := decodeFields(data)
	if err != nil {
		return nil, err
	}

	var o Order
	if err := requireField(fields, "id", &o.ID); err != nil {
		return nil, err
	}
	if err := requireField(fields, "name", &o.Name); err != nil {
		return nil, err
	}
	if err := requireField(fields, "description", &o.Description); err != nil {
		return nil, err
	}

	if o.StartDate, err = requireDateField(fields, "start_date"); err != nil {
		return nil, err
	}
	if o.EndDate, err = requireDateField(fields, "end_date"); err != nil {
		return nil, err
	}

	if err := requireField(fields, "address", &o.Address); err != nil {
		return nil, err
	}
	if err := requireField(fields, "price", &o.Price); err != nil {
		return nil, err
	}
	if err := requireField(fields, "customer_id", &o.CustomerID); err != nil {
		return nil, err
	}
	// executor_id anahtarı zorunludur ama değeri null olabilir.
	if err := requireField(fields, "executor_id", &o.ExecutorID); err != nil {
		return nil, err
	}

	return &o, nil
}

type OrderRepository interface {
	FindAll() ([]Order, error)
	FindByID(id int64) (*Order, error)
	Create(order *Order) error
	Update(order *Order) error
	Delete(id int64) error
}

type OrderService interface {
	ListOrders() ([]Order, error)
	GetOrderByID(id int64) (*Order, error)
	CreateOrder(order *Order) error
	ReplaceOrder(id int64, order *Order) error
	DeleteOrder(id int64) error
}
