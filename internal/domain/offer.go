package domain

// Offer bir kullanıcının bir siparişi üstlenme teklifidir.
type Offer struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"order_id"`
	ExecutorID int64 `json:"executor_id"`
}

func ParseOffer(data []byte) (*Offer, error) {
	fields, err := decodeFields(data)
	if err != nil {
		return nil, err
	}

	var o Offer
	if err := requireField(fields, "id", &o.ID); err != nil {
		return nil, err
	}
	if err := requireField(fields, "order_id", &o.OrderID); err != nil {
		return nil, err
	}
	if err := requireField(fields, "executor_id", &o.ExecutorID); err != nil {
		return nil, err
	}

	return &o, nil
}

type OfferRepository interface {
	FindAll() ([]Offer, error)
	FindByID(id int64) (*Offer, error)
	Create(offer *Offer) error
	Update(offer *Offer) error
	Delete(id int64) error
}

type OfferService interface {
	ListOffers() ([]Offer, error)
	GetOfferByID(id int64) (*Offer, error)
	CreateOffer(offer *Offer) error
	ReplaceOffer(id int64, offer *Offer) error
	DeleteOffer(id int64) error
}
