// Package agency wraps the estate agency contract behind typed
// operations, one per contract method. Each operation validates its
// inputs locally, then issues the corresponding gateway call as the
// session account. State-changing operations are fire-and-report: they
// return the transaction hash on submission and never wait for the
// transaction to be mined.
package agency

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"estatecli/gateway"
	"estatecli/logging"
	"estatecli/types"
	"estatecli/validate"
)

type Agency struct {
	gw     gateway.Gateway
	logger zerolog.Logger
}

func New(gw gateway.Gateway) *Agency {
	return &Agency{
		gw:     gw,
		logger: logging.RootLogger.With().Str("Agency", "estate").Logger(),
	}
}

// Login unlocks an existing account and binds it to the session. On
// failure the session stays unauthenticated.
func (a *Agency) Login(ctx context.Context, s *Session, account, password string) error {
	if err := a.gw.UnlockAccount(ctx, account, password); err != nil {
		return err
	}
	s.authenticate(account)
	a.logger.Info().Str("session", s.ID()).Str("account", account).Msg("logged in")
	return nil
}

// Register validates the password policy locally, creates a new
// node-managed account and binds it to the session. Policy failures
// return before any gateway call is made.
func (a *Agency) Register(ctx context.Context, s *Session, password string) (string, error) {
	if err := validate.Password(password); err != nil {
		return "", err
	}
	account, err := a.gw.NewAccount(ctx, password)
	if err != nil {
		return "", err
	}
	s.authenticate(account)
	a.logger.Info().Str("session", s.ID()).Str("account", account).Msg("registered")
	return account, nil
}

// Logout clears the session. Purely local; the node-side unlock simply
// expires.
func (a *Agency) Logout(s *Session) {
	a.logger.Info().Str("session", s.ID()).Str("account", s.Account()).Msg("logged out")
	s.clear()
}

func (a *Agency) CreateEstate(ctx context.Context, s *Session, addr string, square *big.Int, esType types.EstateType) (string, error) {
	return a.gw.Transact(ctx, s.Account(), "createEstate", nil, addr, square, uint8(esType))
}

func (a *Agency) CreateAd(ctx context.Context, s *Session, estateID, price *big.Int) (string, error) {
	return a.gw.Transact(ctx, s.Account(), "createAd", nil, estateID, price)
}

func (a *Agency) UpdateEstateActive(ctx context.Context, s *Session, estateID *big.Int, active bool) (string, error) {
	return a.gw.Transact(ctx, s.Account(), "updateEstateActive", nil, estateID, active)
}

func (a *Agency) UpdateAdType(ctx context.Context, s *Session, adID *big.Int, status types.AdStatus) (string, error) {
	return a.gw.Transact(ctx, s.Account(), "updateAdType", nil, adID, uint8(status))
}

// BuyEstate purchases the estate behind an advertisement. It reads the
// advertisement's current price and immediately transacts with that
// price attached as value. The two calls are not atomic: if the price
// changes in between, the contract decides the outcome. The price is
// fetched fresh on every invocation, never cached across menu turns.
func (a *Agency) BuyEstate(ctx context.Context, s *Session, adID *big.Int) (string, error) {
	var ad gateway.AdRecord
	if err := a.gw.Call(ctx, "ads", &ad, adID); err != nil {
		return "", err
	}
	return a.gw.Transact(ctx, s.Account(), "buyEstate", ad.Price, adID)
}

// Withdraw transfers amount from the contract's escrowed balance of the
// session account to the given address.
func (a *Agency) Withdraw(ctx context.Context, s *Session, to string, amount *big.Int) (string, error) {
	if !common.IsHexAddress(to) {
		return "", &validate.ValidationError{Reason: "recipient must be a hex address"}
	}
	return a.gw.Transact(ctx, s.Account(), "withdraw", nil, common.HexToAddress(to), amount)
}

// Estates returns a snapshot of every estate record the contract holds.
func (a *Agency) Estates(ctx context.Context) ([]types.Estate, error) {
	var records []gateway.EstateRecord
	if err := a.gw.Call(ctx, "getEstates", &records); err != nil {
		return nil, err
	}
	estates := make([]types.Estate, 0, len(records))
	for _, r := range records {
		estates = append(estates, types.Estate{
			ID:     r.IdEstate,
			Addr:   r.Addr,
			Square: r.Square,
			Type:   types.EstateType(r.EsType),
			Owner:  r.Owner.Hex(),
			Active: r.IsActive,
		})
	}
	return estates, nil
}

// Ads returns a snapshot of the current sale advertisements.
func (a *Agency) Ads(ctx context.Context) ([]types.Advertisement, error) {
	var records []gateway.AdRecord
	if err := a.gw.Call(ctx, "getAd", &records); err != nil {
		return nil, err
	}
	ads := make([]types.Advertisement, 0, len(records))
	for _, r := range records {
		ads = append(ads, types.Advertisement{
			Price:    r.Price,
			EstateID: r.IdEstate,
			Owner:    r.Owner.Hex(),
			Buyer:    r.Buyer.Hex(),
			Date:     r.Date,
			Status:   types.AdStatus(r.AdType),
		})
	}
	return ads, nil
}

// ContractBalance returns the escrow balance the contract reports to
// the session account. getBalance depends on msg.sender, so the call
// carries the session account as caller.
func (a *Agency) ContractBalance(ctx context.Context, s *Session) (*big.Int, error) {
	var balance *big.Int
	if err := a.gw.CallFrom(ctx, s.Account(), "getBalance", &balance); err != nil {
		return nil, err
	}
	return balance, nil
}

// AccountBalance returns the session account's native balance in wei.
func (a *Agency) AccountBalance(ctx context.Context, s *Session) (*big.Int, error) {
	return a.gw.NativeBalance(ctx, s.Account())
}
