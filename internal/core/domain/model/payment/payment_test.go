package payment_test

import (
	"testing"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/payment"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items() []payment.Item {
	return []payment.Item{
		{BakedGoodsID: kernel.NewUUID(), Quantity: 2, Price: 350, TotalPrice: 700},
		{BakedGoodsID: kernel.NewUUID(), Quantity: 1, Price: 80, TotalPrice: 80},
	}
}

func newPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.Create(kernel.NewUUID(), kernel.NewUUID(), items(), kernel.MustGeoLocation(49.19, 16.6))
	require.NoError(t, err)
	p.MarkCommitted()
	return p
}

func TestCreate(t *testing.T) {
	p := newPayment(t)

	assert.Equal(t, payment.Created, p.Status())
	assert.Equal(t, 3, p.ItemCount())
	assert.Equal(t, kernel.Money(780), p.Total())

	_, err := payment.Create(kernel.NewUUID(), kernel.NewUUID(), nil, kernel.MustGeoLocation(1, 1))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPayment_HappyPath(t *testing.T) {
	// Given
	p := newPayment(t)

	// When
	require.NoError(t, p.StartProcessing(" 0xabc "))
	require.NoError(t, p.Succeed("CRYPTO-TX-1"))
	processingAfterSuccess := p.Status()
	require.NoError(t, p.MarkPaid())
	require.NoError(t, p.ReleaseFunds())

	// Then
	assert.Equal(t, payment.Processing, processingAfterSuccess)
	assert.Equal(t, payment.Released, p.Status())
	assert.Equal(t, "CRYPTO-TX-1", p.TransactionID())
	assert.Equal(t, "0xabc", p.WalletAddress())
	require.Len(t, p.Changes(), 4)
	assert.Equal(t, payment.PaymentMarkedPaid{
		OrderID:       p.ID(),
		CartID:        p.CartID(),
		TransactionID: "CRYPTO-TX-1",
		CustomerLat:   49.19,
		CustomerLon:   16.6,
	}, p.Changes()[2])
}

func TestPayment_Failure(t *testing.T) {
	p := newPayment(t)
	require.NoError(t, p.StartProcessing(""))

	require.NoError(t, p.Fail("Insufficient funds in crypto wallet"))

	assert.Equal(t, payment.Failed, p.Status())
	assert.Equal(t, "Insufficient funds in crypto wallet", p.FailureReason())
	require.ErrorIs(t, p.MarkPaid(), errs.ErrPreconditionViolated)
	require.ErrorIs(t, p.StartProcessing(""), errs.ErrPreconditionViolated)
}

func TestPayment_Preconditions(t *testing.T) {
	tests := []struct {
		name string
		act  func(p *payment.Payment) error
	}{
		{name: "succeed before processing", act: func(p *payment.Payment) error { return p.Succeed("tx") }},
		{name: "mark paid before processing", act: func(p *payment.Payment) error { return p.MarkPaid() }},
		{name: "release before paid", act: func(p *payment.Payment) error { return p.ReleaseFunds() }},
		{name: "fail before processing", act: func(p *payment.Payment) error { return p.Fail("x") }},
		{name: "pay twice", act: func(p *payment.Payment) error {
			if err := p.StartProcessing(""); err != nil {
				return err
			}
			return p.StartProcessing("")
		}},
		{name: "mark paid without approval", act: func(p *payment.Payment) error {
			if err := p.StartProcessing(""); err != nil {
				return err
			}
			return p.MarkPaid()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPayment(t)
			err := tt.act(p)
			require.ErrorIs(t, err, errs.ErrPreconditionViolated)
		})
	}
}

func TestPayment_ReleaseTwice(t *testing.T) {
	p := newPayment(t)
	require.NoError(t, p.StartProcessing(""))
	require.NoError(t, p.Succeed("tx"))
	require.NoError(t, p.MarkPaid())
	require.NoError(t, p.ReleaseFunds())
	p.MarkCommitted()

	err := p.ReleaseFunds()

	require.ErrorIs(t, err, errs.ErrPreconditionViolated)
	assert.Empty(t, p.Changes())
}

func TestRestore(t *testing.T) {
	p := newPayment(t)
	require.NoError(t, p.StartProcessing("w"))
	require.NoError(t, p.Succeed("tx"))
	history := append([]kernel.DomainEvent{payment.PaymentCreated{
		OrderID: p.ID(), CartID: p.CartID(), Items: items(), CustomerLat: 1, CustomerLon: 1,
	}}, p.Changes()...)

	restored, err := payment.Restore(p.ID(), history)

	require.NoError(t, err)
	assert.Equal(t, payment.Processing, restored.Status())
	assert.Equal(t, "tx", restored.TransactionID())
	assert.Equal(t, 3, restored.Version())
}
