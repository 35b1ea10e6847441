package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUserBody = `{
	"id": 1,
	"first_name": "İlkay",
	"last_name": "Şahin",
	"age": 29,
	"email": "ilkay@example.com",
	"role": "customer",
	"phone": "+90 555 000 00 00"
}`

func TestParseUser(t *testing.T) {
	t.Parallel()

	user, err := ParseUser([]byte(validUserBody))
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "İlkay", user.FirstName)
	assert.Equal(t, "Şahin", user.LastName)
	assert.Equal(t, 29, user.Age)
	assert.Equal(t, "ilkay@example.com", user.Email)
	assert.Equal(t, "customer", user.Role)
	assert.Equal(t, "+90 555 000 00 00", user.Phone)
}

func TestParseUserMissingField(t *testing.T) {
	t.Parallel()

	body := `{"id": 1, "first_name": "A", "last_name": "B", "age": 20, "role": "customer", "phone": "x"}`

	_, err := ParseUser([]byte(body))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "email", validationErr.Field)
}

func TestParseUserBadFieldType(t *testing.T) {
	t.Parallel()

	body := `{"id": 1, "first_name": "A", "last_name": "B", "age": "yirmi", "email": "a@b", "role": "r", "phone": "x"}`

	_, err := ParseUser([]byte(body))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "age", validationErr.Field)
}

func TestParseUserNonObjectBody(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`[]`, `"dizge"`, `boş değil ama json değil`} {
		_, err := ParseUser([]byte(body))

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "gövde: %s", body)
		assert.Equal(t, "body", validationErr.Field)
	}
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	body := `{
		"id": 1,
		"name": "A",
		"description": "d",
		"start_date": "6/1/2024",
		"end_date": "6/10/2024",
		"address": "x",
		"price": 100,
		"customer_id": 5,
		"executor_id": null
	}`

	order, err := ParseOrder([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, int64(1), order.ID)
	assert.True(t, order.StartDate.Equal(NewDate(2024, time.June, 1)))
	assert.True(t, order.EndDate.Equal(NewDate(2024, time.June, 10)))
	assert.Equal(t, 100.0, order.Price)
	assert.Equal(t, int64(5), order.CustomerID)
	assert.Nil(t, order.ExecutorID)
}

func TestParseOrderExecutorSet(t *testing.T) {
	t.Parallel()

	body := `{
		"id": 2,
		"name": "B",
		"description": "d",
		"start_date": "1/13/2024",
		"end_date": "2/1/2024",
		"address": "y",
		"price": 49.9,
		"customer_id": 5,
		"executor_id": 7
	}`

	order, err := ParseOrder([]byte(body))
	require.NoError(t, err)

	require.NotNil(t, order.ExecutorID)
	assert.Equal(t, int64(7), *order.ExecutorID)
}

func TestParseOrderDateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		startDate string
		wantField string
	}{
		{name: "ay 13 geçersiz", startDate: `"13/1/2024"`, wantField: "start_date"},
		{name: "tarih null olamaz", startDate: `null`, wantField: "start_date"},
		{name: "tarih sayı olamaz", startDate: `20240101`, wantField: "start_date"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := `{
				"id": 1, "name": "A", "description": "d",
				"start_date": ` + tt.startDate + `, "end_date": "6/10/2024",
				"address": "x", "price": 100, "customer_id": 5, "executor_id": null
			}`

			_, err := ParseOrder([]byte(body))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestParseOrderMissingExecutorKey(t *testing.T) {
	t.Parallel()

	// executor_id değeri null olabilir ama anahtarın kendisi zorunludur.
	body := `{
		"id": 1, "name": "A", "description": "d",
		"start_date": "6/1/2024", "end_date": "6/10/2024",
		"address": "x", "price": 100, "customer_id": 5
	}`

	_, err := ParseOrder([]byte(body))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "executor_id", validationErr.Field)
}

func TestParseOffer(t *testing.T) {
	t.Parallel()

	offer, err := ParseOffer([]byte(`{"id": 3, "order_id": 1, "executor_id": 7}`))
	require.NoError(t, err)

	assert.Equal(t, int64(3), offer.ID)
	assert.Equal(t, int64(1), offer.OrderID)
	assert.Equal(t, int64(7), offer.ExecutorID)

	_, err = ParseOffer([]byte(`{"id": 3, "executor_id": 7}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "order_id", validationErr.Field)
}
