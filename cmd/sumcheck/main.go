package main

import (
	"fmt"
	"os"

	"github.com/consensys/sumcheck/common"
	"github.com/consensys/sumcheck/logger"
	"github.com/consensys/sumcheck/poly"
	"github.com/consensys/sumcheck/protocol"

	"github.com/spf13/cobra"
)

var (
	nbVars    int
	nbFactors int
	seed      string
)

func init() {
	runCmd.Flags().IntVar(&nbVars, "vars", 0, "Number of variables of a random multilinear claim. 0 runs the built-in sample claim.")
	runCmd.Flags().IntVar(&nbFactors, "factors", 2, "Number of factors of the random claim.")
	runCmd.Flags().StringVar(&seed, "seed", "", "Seed for the verifier's challenges. Empty draws them from crypto/rand.")
}

var runCmd = &cobra.Command{
	Use:   "sumcheck",
	Short: "Runs the sumcheck protocol on a product of multilinear polynomials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// sampleFactors is the product (x₀x₂ + x₁ + x₂)(x₀ + x₁ + x₂)²
func sampleFactors() []poly.Oracle {
	linear := poly.NewSparse(3, []poly.Term{
		poly.Monomial(1, 0),
		poly.Monomial(1, 1),
		poly.Monomial(1, 2),
	})

	return []poly.Oracle{
		poly.NewSparse(3, []poly.Term{
			poly.Monomial(1, 0, 2),
			poly.Monomial(1, 1),
			poly.Monomial(1, 2),
		}),
		linear,
		linear,
	}
}

// randomFactors draws nbFactors polynomials of the form c₀ + Σ cᵥxᵥ with
// uniform coefficients
func randomFactors(nbVars, nbFactors int) ([]poly.Oracle, error) {
	var sampler protocol.CryptoSampler

	factors := make([]poly.Oracle, nbFactors)
	for k := range factors {
		terms := make([]poly.Term, 0, nbVars+1)

		c, err := sampler.Sample()
		if err != nil {
			return nil, err
		}
		terms = append(terms, poly.Term{Coeff: c})

		for v := 0; v < nbVars; v++ {
			if c, err = sampler.Sample(); err != nil {
				return nil, err
			}
			terms = append(terms, poly.Term{Coeff: c, Powers: map[int]int{v: 1}})
		}
		factors[k] = poly.NewSparse(nbVars, terms)
	}
	return factors, nil
}

func run() error {
	log := logger.Logger()

	factors := sampleFactors()
	if nbVars > 0 {
		var err error
		if factors, err = randomFactors(nbVars, nbFactors); err != nil {
			return err
		}
	}

	var samplers []protocol.Sampler
	if seed != "" {
		samplers = append(samplers, protocol.NewShakeSampler([]byte(seed)))
	}

	n, claimedSum, prover, verifier, err := protocol.Setup(factors, samplers...)
	if err != nil {
		return err
	}
	log.Info().
		Int("nbVars", n).
		Int("nbFactors", len(factors)).
		Str("claimedSum", claimedSum.String()).
		Msg("claim ready")

	transcript, err := protocol.Run(n, prover, verifier)
	if err != nil {
		return err
	}

	log.Info().Str("randomness", common.FrSliceToString(transcript.Randomness)).Msg("transcript")
	if transcript.Accept {
		fmt.Println("The verifier accepts the claim.")
	} else {
		fmt.Println("The verifier rejects the claim.")
	}
	return nil
}

func main() {
	if err := runCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
