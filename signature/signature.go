// Package signature produces signing receipts for accepted contracts.
//
// The current implementation is a stand-in: it fabricates a transaction-style
// receipt locally instead of talking to any ledger. The receipt shape is kept
// so a real registry can be dropped in behind the Service interface later.
package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/rand"
	"time"

	"github.com/teckion/dealership-api/models"
)

// Service signs a contract on behalf of a buyer and returns the receipt
type Service interface {
	Sign(contractID, signerEmail, vehicleID string) (*models.SignatureReceipt, error)
}

const (
	// signDelay simulates registry round-trip latency
	signDelay = 2500 * time.Millisecond

	registryName = "TeckionSmartContractRegistry_v1"

	baseBlockNumber = 18000000
	blockJitter     = 100000
	baseGas         = 21000
	gasJitter       = 50000
)

// SimulatedSigner fabricates receipts locally
type SimulatedSigner struct {
	// now is swappable in tests; defaults to time.Now
	now   func() time.Time
	delay time.Duration
}

// NewSimulatedSigner returns a signer with the standard simulated delay
func NewSimulatedSigner() *SimulatedSigner {
	return &SimulatedSigner{now: time.Now, delay: signDelay}
}

// NewInstantSigner returns a signer without the artificial delay, for tests
func NewInstantSigner() *SimulatedSigner {
	return &SimulatedSigner{now: time.Now}
}

// Sign produces a receipt whose hash covers the contract, signer, vehicle and
// the signing instant. Two signatures over the same contract therefore never
// collide.
func (s *SimulatedSigner) Sign(contractID, signerEmail, vehicleID string) (*models.SignatureReceipt, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	ts := s.now()
	payload := fmt.Sprintf("%s-%s-%s-%d", contractID, signerEmail, vehicleID, ts.UnixNano())
	sum := sha256.Sum256([]byte(payload))

	return &models.SignatureReceipt{
		TxHash:          "0x" + hex.EncodeToString(sum[:]),
		BlockNumber:     baseBlockNumber + rand.Int63n(blockJitter),
		Timestamp:       ts.UTC().Format(time.RFC3339),
		GasUsed:         baseGas + rand.Int63n(gasJitter),
		ContractAddress: registryAddress(),
	}, nil
}

// registryAddress derives a fixed, address-shaped identifier for the
// simulated registry
func registryAddress() string {
	sum := sha256.Sum256([]byte(registryName))
	return ("0x" + hex.EncodeToString(sum[:]))[:42]
}
