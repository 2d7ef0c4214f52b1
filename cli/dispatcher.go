// Package cli runs the interactive menu loop. Two screens: an
// unauthenticated one (login, register, exit) and an authenticated one
// (the contract operations plus logout). Every operation failure is
// printed and the loop continues; only a broken input stream stops it.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/rs/zerolog"

	"estatecli/agency"
	"estatecli/logging"
	"estatecli/types"
	"estatecli/validate"
)

type Dispatcher struct {
	agency  *agency.Agency
	session *agency.Session
	in      *bufio.Reader
	out     io.Writer
	logger  zerolog.Logger
}

func NewDispatcher(a *agency.Agency, in io.Reader, out io.Writer) *Dispatcher {
	return &Dispatcher{
		agency:  a,
		session: agency.NewSession(),
		in:      bufio.NewReader(in),
		out:     out,
		logger:  logging.RootLogger.With().Str("Dispatcher", "menu").Logger(),
	}
}

// Run loops over menu turns until the user exits from the
// unauthenticated screen, or the input stream fails.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Debug().Str("session", d.session.ID()).Msg("dispatcher started")
	for {
		if !d.session.Authenticated() {
			exit, err := d.guestTurn(ctx)
			if err != nil {
				return err
			}
			if exit {
				return nil
			}
			continue
		}
		if err := d.userTurn(ctx); err != nil {
			return err
		}
	}
}

func (d *Dispatcher) guestTurn(ctx context.Context) (bool, error) {
	choice, err := d.prompt("Choose an action:\n" +
		"1. Log in\n" +
		"2. Register\n" +
		"3. Exit\n")
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(choice) {
	case "1":
		return false, d.login(ctx)
	case "2":
		return false, d.register(ctx)
	case "3":
		return true, nil
	default:
		d.printf("Choose a valid option.\n")
		return false, nil
	}
}

func (d *Dispatcher) userTurn(ctx context.Context) error {
	choice, err := d.prompt("Choose an action:\n" +
		"1. Create an estate\n" +
		"2. Create a sale advertisement\n" +
		"3. Change estate status\n" +
		"4. Change advertisement status\n" +
		"5. Buy an estate\n" +
		"6. Withdraw funds\n" +
		"7. List available estates\n" +
		"8. List current advertisements\n" +
		"9. Show contract balance\n" +
		"10. Show account balance\n" +
		"11. Log out\n")
	if err != nil {
		return err
	}
	switch strings.TrimSpace(choice) {
	case "1":
		return d.createEstate(ctx)
	case "2":
		return d.createAd(ctx)
	case "3":
		return d.updateEstateActive(ctx)
	case "4":
		return d.updateAdType(ctx)
	case "5":
		return d.buyEstate(ctx)
	case "6":
		return d.withdraw(ctx)
	case "7":
		return d.listEstates(ctx)
	case "8":
		return d.listAds(ctx)
	case "9":
		return d.contractBalance(ctx)
	case "10":
		return d.accountBalance(ctx)
	case "11":
		d.agency.Logout(d.session)
		return nil
	default:
		d.printf("Choose a valid option.\n")
		return nil
	}
}

func (d *Dispatcher) login(ctx context.Context) error {
	account, err := d.prompt("Enter the account public key: ")
	if err != nil {
		return err
	}
	password, err := d.prompt("Enter the password: ")
	if err != nil {
		return err
	}
	if err := d.agency.Login(ctx, d.session, account, password); err != nil {
		d.printf("Login failed: %v\n", err)
		return nil
	}
	d.printf("Login successful!\n")
	return nil
}

func (d *Dispatcher) register(ctx context.Context) error {
	password, err := d.prompt("Enter a password: ")
	if err != nil {
		return err
	}
	account, rerr := d.agency.Register(ctx, d.session, password)
	if rerr != nil {
		d.printf("Registration failed: %v\n", rerr)
		return nil
	}
	d.printf("Public key of your new account: %s\n", account)
	return nil
}

func (d *Dispatcher) createEstate(ctx context.Context) error {
	addr, err := d.prompt("Enter the estate address: ")
	if err != nil {
		return err
	}
	square, ok, err := d.promptBigInt("Enter the estate square: ")
	if err != nil || !ok {
		return err
	}
	d.printf("Choose the estate type:\n")
	for i, name := range types.EstateTypeNames {
		d.printf("%d. %s\n", i+1, name)
	}
	raw, err := d.prompt("Enter the number of the chosen estate type: ")
	if err != nil {
		return err
	}
	choice, verr := validate.Choice(strings.TrimSpace(raw), len(types.EstateTypeNames))
	if verr != nil {
		d.printf("Error: %v\n", verr)
		return nil
	}
	tx, terr := d.agency.CreateEstate(ctx, d.session, addr, square, types.EstateType(choice))
	if terr != nil {
		d.printf("Failed to create the estate: %v\n", terr)
		return nil
	}
	d.printf("Estate creation transaction sent: %s\n", tx)
	return nil
}

func (d *Dispatcher) createAd(ctx context.Context) error {
	estateID, ok, err := d.promptBigInt("Enter the ID of the estate the advertisement is for: ")
	if err != nil || !ok {
		return err
	}
	price, ok, err := d.promptBigInt("Enter the price: ")
	if err != nil || !ok {
		return err
	}
	tx, terr := d.agency.CreateAd(ctx, d.session, estateID, price)
	if terr != nil {
		d.printf("Failed to create the advertisement: %v\n", terr)
		return nil
	}
	d.printf("Advertisement creation transaction sent: %s\n", tx)
	return nil
}

func (d *Dispatcher) updateEstateActive(ctx context.Context) error {
	estateID, ok, err := d.promptBigInt("Enter the ID of the estate to change: ")
	if err != nil || !ok {
		return err
	}
	raw, err := d.prompt("Enter 'true' to activate or 'false' to deactivate (false initially): ")
	if err != nil {
		return err
	}
	active := validate.BoolLiteral(strings.TrimSpace(raw))
	tx, terr := d.agency.UpdateEstateActive(ctx, d.session, estateID, active)
	if terr != nil {
		d.printf("Failed to change the estate status: %v\n", terr)
		return nil
	}
	d.printf("Estate status transaction sent: %s\n", tx)
	return nil
}

func (d *Dispatcher) updateAdType(ctx context.Context) error {
	adID, ok, err := d.promptBigInt("Enter the ID of the advertisement to change: ")
	if err != nil || !ok {
		return err
	}
	d.printf("Choose the advertisement status:\n")
	for i, name := range types.AdStatusNames {
		d.printf("%d. %s\n", i+1, name)
	}
	raw, err := d.prompt("Enter the number of the chosen status: ")
	if err != nil {
		return err
	}
	choice, verr := validate.Choice(strings.TrimSpace(raw), len(types.AdStatusNames))
	if verr != nil {
		d.printf("Error: %v\n", verr)
		return nil
	}
	tx, terr := d.agency.UpdateAdType(ctx, d.session, adID, types.AdStatus(choice))
	if terr != nil {
		d.printf("Failed to change the advertisement status: %v\n", terr)
		return nil
	}
	d.printf("Advertisement status transaction sent: %s\n", tx)
	return nil
}

func (d *Dispatcher) buyEstate(ctx context.Context) error {
	adID, ok, err := d.promptBigInt("Enter the ID of the advertisement to buy from: ")
	if err != nil || !ok {
		return err
	}
	tx, terr := d.agency.BuyEstate(ctx, d.session, adID)
	if terr != nil {
		d.printf("Failed to buy the estate: %v\n", terr)
		return nil
	}
	d.printf("Purchase transaction sent: %s\n", tx)
	return nil
}

func (d *Dispatcher) withdraw(ctx context.Context) error {
	to, err := d.prompt("Enter the recipient address: ")
	if err != nil {
		return err
	}
	amount, ok, err := d.promptBigInt("Enter the amount: ")
	if err != nil || !ok {
		return err
	}
	tx, terr := d.agency.Withdraw(ctx, d.session, strings.TrimSpace(to), amount)
	if terr != nil {
		d.printf("Failed to withdraw funds: %v\n", terr)
		return nil
	}
	d.printf("Withdrawal transaction sent: %s\n", tx)
	return nil
}

func (d *Dispatcher) listEstates(ctx context.Context) error {
	estates, err := d.agency.Estates(ctx)
	if err != nil {
		d.printf("Failed to fetch the estates: %v\n", err)
		return nil
	}
	d.printf("Available estates:\n")
	for _, e := range estates {
		status := "Inactive"
		if e.Active {
			status = "Active"
		}
		d.printf("ID: %s, Address: %s, Square: %s, Type: %s, Status: %s\n",
			e.ID, e.Addr, e.Square, e.Type, status)
	}
	return nil
}

func (d *Dispatcher) listAds(ctx context.Context) error {
	ads, err := d.agency.Ads(ctx)
	if err != nil {
		d.printf("Failed to fetch the advertisements: %v\n", err)
		return nil
	}
	d.printf("Current sale advertisements:\n")
	for _, ad := range ads {
		d.printf("Price: %s, Estate ID: %s, Owner: %s, Buyer: %s, Date: %s, Status: %s\n",
			ad.Price, ad.EstateID, ad.Owner, ad.Buyer, ad.Date, ad.Status)
	}
	return nil
}

func (d *Dispatcher) contractBalance(ctx context.Context) error {
	balance, err := d.agency.ContractBalance(ctx, d.session)
	if err != nil {
		d.printf("Failed to fetch the contract balance: %v\n", err)
		return nil
	}
	d.printf("Balance on the smart contract: %s\n", balance)
	return nil
}

func (d *Dispatcher) accountBalance(ctx context.Context) error {
	balance, err := d.agency.AccountBalance(ctx, d.session)
	if err != nil {
		d.printf("Failed to fetch the account balance: %v\n", err)
		return nil
	}
	d.printf("Balance on the account: %s\n", balance)
	return nil
}

// prompt prints the label and reads one line, stripped of the line
// terminator only, so passwords keep any inner spacing.
func (d *Dispatcher) prompt(label string) (string, error) {
	d.printf("%s", label)
	line, err := d.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptBigInt reads an integer field. A parse failure is printed and
// reported through ok=false; err is reserved for a broken input stream.
func (d *Dispatcher) promptBigInt(label string) (n *big.Int, ok bool, err error) {
	raw, err := d.prompt(label)
	if err != nil {
		return nil, false, err
	}
	n, verr := validate.BigInt(strings.TrimSpace(raw))
	if verr != nil {
		d.printf("Error: %v\n", verr)
		return nil, false, nil
	}
	return n, true, nil
}

func (d *Dispatcher) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.out, format, args...)
}
