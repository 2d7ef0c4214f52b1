package geth

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// estateABIJSON describes the deployed estate agency contract. The
// method names, arities and tuple component order are fixed by the
// deployment; renaming or reordering anything here breaks wire
// compatibility.
const estateABIJSON = `[
  {"type":"function","name":"createEstate","stateMutability":"nonpayable",
   "inputs":[{"name":"addr","type":"string"},{"name":"square","type":"uint256"},{"name":"esType","type":"uint8"}],
   "outputs":[]},
  {"type":"function","name":"createAd","stateMutability":"nonpayable",
   "inputs":[{"name":"idEstate","type":"uint256"},{"name":"price","type":"uint256"}],
   "outputs":[]},
  {"type":"function","name":"updateEstateActive","stateMutability":"nonpayable",
   "inputs":[{"name":"idEstate","type":"uint256"},{"name":"isActive","type":"bool"}],
   "outputs":[]},
  {"type":"function","name":"updateAdType","stateMutability":"nonpayable",
   "inputs":[{"name":"idAd","type":"uint256"},{"name":"adType","type":"uint8"}],
   "outputs":[]},
  {"type":"function","name":"buyEstate","stateMutability":"payable",
   "inputs":[{"name":"idAd","type":"uint256"}],
   "outputs":[]},
  {"type":"function","name":"withdraw","stateMutability":"nonpayable",
   "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
   "outputs":[]},
  {"type":"function","name":"getEstates","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"","type":"tuple[]","components":[
     {"name":"addr","type":"string"},
     {"name":"square","type":"uint256"},
     {"name":"esType","type":"uint8"},
     {"name":"owner","type":"address"},
     {"name":"isActive","type":"bool"},
     {"name":"idEstate","type":"uint256"}]}]},
  {"type":"function","name":"getAd","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"","type":"tuple[]","components":[
     {"name":"price","type":"uint256"},
     {"name":"idEstate","type":"uint256"},
     {"name":"owner","type":"address"},
     {"name":"buyer","type":"address"},
     {"name":"date","type":"uint256"},
     {"name":"adType","type":"uint8"}]}]},
  {"type":"function","name":"ads","stateMutability":"view",
   "inputs":[{"name":"","type":"uint256"}],
   "outputs":[
     {"name":"price","type":"uint256"},
     {"name":"idEstate","type":"uint256"},
     {"name":"owner","type":"address"},
     {"name":"buyer","type":"address"},
     {"name":"date","type":"uint256"},
     {"name":"adType","type":"uint8"}]},
  {"type":"function","name":"getBalance","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"","type":"uint256"}]}
]`

var estateABI = mustABI()

func mustABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(estateABIJSON))
	if err != nil {
		panic("estate contract ABI: " + err.Error())
	}
	return parsed
}
