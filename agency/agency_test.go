package agency

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"estatecli/gateway"
	"estatecli/internal/gatewaytest"
	"estatecli/types"
	"estatecli/validate"
)

const (
	sellerAddr = "0x1111111111111111111111111111111111111111"
	buyerAddr  = "0x2222222222222222222222222222222222222222"
)

func authenticated(t *testing.T) (*Agency, *Session, *gatewaytest.Fake) {
	t.Helper()
	fake := &gatewaytest.Fake{TxHash: "0xdead"}
	a := New(fake)
	s := NewSession()
	require.NoError(t, a.Login(context.Background(), s, sellerAddr, "pw"))
	fake.Calls = nil
	return a, s, fake
}

func TestRegisterRejectsShortPasswordBeforeGateway(t *testing.T) {
	fake := &gatewaytest.Fake{}
	a := New(fake)
	s := NewSession()

	_, err := a.Register(context.Background(), s, "short")
	require.Equal(t, validate.ErrPasswordShort, err)
	require.Empty(t, fake.Calls, "policy failure must not reach the gateway")
	require.False(t, s.Authenticated())
}

func TestRegisterRejectsMissingUppercase(t *testing.T) {
	fake := &gatewaytest.Fake{}
	a := New(fake)
	s := NewSession()

	_, err := a.Register(context.Background(), s, "lowercase123!")
	require.Equal(t, validate.ErrPasswordUpper, err)
	require.Empty(t, fake.Calls)
}

func TestRegisterCreatesAccount(t *testing.T) {
	fake := &gatewaytest.Fake{NewAccountAddr: buyerAddr}
	a := New(fake)
	s := NewSession()

	account, err := a.Register(context.Background(), s, "Valid123!pass")
	require.NoError(t, err)
	require.Equal(t, buyerAddr, account)
	require.True(t, s.Authenticated())
	require.Equal(t, buyerAddr, s.Account())
	require.Len(t, fake.Calls, 1)
	require.Equal(t, "new", fake.Calls[0].Op)
}

func TestLoginFailureLeavesSessionUnauthenticated(t *testing.T) {
	fake := &gatewaytest.Fake{
		UnlockErr: &gateway.AuthError{Op: "unlock", Err: errors.New("bad password")},
	}
	a := New(fake)
	s := NewSession()

	err := a.Login(context.Background(), s, sellerAddr, "wrong")
	require.Error(t, err)
	require.False(t, s.Authenticated())
	require.Empty(t, s.Account())
}

func TestLoginBindsAccount(t *testing.T) {
	fake := &gatewaytest.Fake{}
	a := New(fake)
	s := NewSession()

	require.NoError(t, a.Login(context.Background(), s, sellerAddr, "pw"))
	require.True(t, s.Authenticated())
	require.Equal(t, sellerAddr, s.Account())
}

func TestLogoutClearsSession(t *testing.T) {
	a, s, _ := authenticated(t)

	a.Logout(s)
	require.False(t, s.Authenticated())
	require.Empty(t, s.Account())
}

func TestCreateEstateEncodesType(t *testing.T) {
	a, s, fake := authenticated(t)

	for wire, esType := range []types.EstateType{types.House, types.Flat, types.Loft, types.Dacha} {
		fake.Calls = nil
		_, err := a.CreateEstate(context.Background(), s, "Main street 1", big.NewInt(55), esType)
		require.NoError(t, err)
		require.Len(t, fake.Calls, 1)
		call := fake.Calls[0]
		require.Equal(t, "transact", call.Op)
		require.Equal(t, "createEstate", call.Method)
		require.Equal(t, sellerAddr, call.From)
		require.Nil(t, call.Value)
		require.Equal(t, []interface{}{"Main street 1", big.NewInt(55), uint8(wire)}, call.Args)
	}
}

func TestUpdateAdTypeEncodesStatus(t *testing.T) {
	a, s, fake := authenticated(t)

	_, err := a.UpdateAdType(context.Background(), s, big.NewInt(7), types.Closed)
	require.NoError(t, err)
	require.Equal(t, []interface{}{big.NewInt(7), uint8(1)}, fake.Calls[0].Args)
}

func TestBuyEstateFetchesPriceThenTransacts(t *testing.T) {
	a, s, fake := authenticated(t)
	price := big.NewInt(777)
	fake.OnCall = func(method string, out interface{}, args []interface{}) error {
		require.Equal(t, "ads", method)
		*(out.(*gateway.AdRecord)) = gateway.AdRecord{
			Price:    price,
			IdEstate: big.NewInt(3),
			Owner:    common.HexToAddress(sellerAddr),
			AdType:   uint8(types.Opened),
		}
		return nil
	}

	_, err := a.BuyEstate(context.Background(), s, big.NewInt(9))
	require.NoError(t, err)

	require.Len(t, fake.Calls, 2, "exactly one read then one transact")
	require.Equal(t, "call", fake.Calls[0].Op)
	require.Equal(t, "ads", fake.Calls[0].Method)
	require.Equal(t, []interface{}{big.NewInt(9)}, fake.Calls[0].Args)

	buy := fake.Calls[1]
	require.Equal(t, "transact", buy.Op)
	require.Equal(t, "buyEstate", buy.Method)
	require.Equal(t, price, buy.Value, "attached value must be the freshly read price")
	require.Equal(t, []interface{}{big.NewInt(9)}, buy.Args)
}

func TestBuyEstateAbortsWhenPriceLookupFails(t *testing.T) {
	a, s, fake := authenticated(t)
	fake.OnCall = func(string, interface{}, []interface{}) error {
		return &gateway.QueryError{Method: "ads", Err: errors.New("node unreachable")}
	}

	_, err := a.BuyEstate(context.Background(), s, big.NewInt(9))
	require.Error(t, err)
	require.Len(t, fake.Calls, 1, "no transact after a failed price read")
}

func TestWithdrawRejectsBadRecipient(t *testing.T) {
	a, s, fake := authenticated(t)

	_, err := a.Withdraw(context.Background(), s, "not-an-address", big.NewInt(10))
	require.IsType(t, &validate.ValidationError{}, err)
	require.Empty(t, fake.Calls)
}

func TestWithdrawTransfersToRecipient(t *testing.T) {
	a, s, fake := authenticated(t)

	_, err := a.Withdraw(context.Background(), s, buyerAddr, big.NewInt(10))
	require.NoError(t, err)
	call := fake.Calls[0]
	require.Equal(t, "withdraw", call.Method)
	require.Equal(t, []interface{}{common.HexToAddress(buyerAddr), big.NewInt(10)}, call.Args)
}

func TestEstatesDecodesRecords(t *testing.T) {
	a, _, fake := authenticated(t)
	fake.OnCall = func(method string, out interface{}, _ []interface{}) error {
		require.Equal(t, "getEstates", method)
		*(out.(*[]gateway.EstateRecord)) = []gateway.EstateRecord{{
			Addr:     "Main street 1",
			Square:   big.NewInt(55),
			EsType:   uint8(types.Loft),
			Owner:    common.HexToAddress(sellerAddr),
			IsActive: true,
			IdEstate: big.NewInt(1),
		}}
		return nil
	}

	estates, err := a.Estates(context.Background())
	require.NoError(t, err)
	require.Equal(t, []types.Estate{{
		ID:     big.NewInt(1),
		Addr:   "Main street 1",
		Square: big.NewInt(55),
		Type:   types.Loft,
		Owner:  common.HexToAddress(sellerAddr).Hex(),
		Active: true,
	}}, estates)
}

func TestAdsDecodesRecords(t *testing.T) {
	a, _, fake := authenticated(t)
	fake.OnCall = func(method string, out interface{}, _ []interface{}) error {
		require.Equal(t, "getAd", method)
		*(out.(*[]gateway.AdRecord)) = []gateway.AdRecord{{
			Price:    big.NewInt(1000),
			IdEstate: big.NewInt(1),
			Owner:    common.HexToAddress(sellerAddr),
			Buyer:    common.HexToAddress(buyerAddr),
			Date:     big.NewInt(1700000000),
			AdType:   uint8(types.Closed),
		}}
		return nil
	}

	ads, err := a.Ads(context.Background())
	require.NoError(t, err)
	require.Len(t, ads, 1)
	require.Equal(t, types.Closed, ads[0].Status)
	require.Equal(t, big.NewInt(1000), ads[0].Price)
	require.Equal(t, common.HexToAddress(buyerAddr).Hex(), ads[0].Buyer)
}

func TestContractBalanceCallsAsSessionAccount(t *testing.T) {
	a, s, fake := authenticated(t)
	fake.OnCall = func(method string, out interface{}, _ []interface{}) error {
		require.Equal(t, "getBalance", method)
		*(out.(**big.Int)) = big.NewInt(5000)
		return nil
	}

	balance, err := a.ContractBalance(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(5000), balance)
	require.Equal(t, "callfrom", fake.Calls[0].Op)
	require.Equal(t, sellerAddr, fake.Calls[0].From)
}

func TestAccountBalance(t *testing.T) {
	a, s, fake := authenticated(t)
	fake.Balance = big.NewInt(123)

	balance, err := a.AccountBalance(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(123), balance)
	require.Equal(t, sellerAddr, fake.Calls[0].From)
}
