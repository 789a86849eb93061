package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"revenue-lab/internal/compare"
	"revenue-lab/internal/domain"
	"revenue-lab/internal/metrics"
	"revenue-lab/internal/session"
)

var foodBundleInputs = map[session.Input]bool{
	session.InputConversionRate:  true,
	session.InputAverageSpending: true,
	session.InputDiscountRate:    true,
	session.InputTotalUsers:      true,
}

type FoodBundleOptions struct {
	GlobalOptions
	OutputOptions
}

// foodBundle is the printable calculator result. The minimum adoption rate is
// a string because it is infinite at a 100% discount.
type foodBundle struct {
	Inputs               domain.FoodBundleInputs `json:"inputs"`
	FoodCustomersPct     float64                 `json:"foodCustomersPct"`
	OtherCustomersPct    float64                 `json:"otherCustomersPct"`
	Rows                 []domain.FoodBundleRow  `json:"rows"`
	MinimumAdoptionRate  string                  `json:"minimumAdoptionRate"`
	MinimumAdoptionGrade domain.Viability        `json:"minimumAdoptionGrade"`
}

func DefaultFoodBundleOptions() *FoodBundleOptions {
	return &FoodBundleOptions{
		GlobalOptions: DefaultGlobalOptions(),
		OutputOptions: DefaultOutputOptions(),
	}
}

func NewCmdFoodBundle() *cobra.Command {
	o := DefaultFoodBundleOptions()
	cmd := &cobra.Command{
		Use:   "food-bundle [INPUT=VALUE...]",
		Short: "Run the food bundle conversion calculator, optionally updating its inputs.",
		Long: "Run the food bundle conversion calculator, optionally updating its inputs.\n\n" +
			"Inputs: conversionRate, averageSpending, discountRate, totalUsers",
		Example:      "  revlab food-bundle discountRate=20 totalUsers=5000",
		RunE:         runE(o),
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *FoodBundleOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
	o.OutputOptions.Bind(fs)
}

func (o *FoodBundleOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *FoodBundleOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if err := o.OutputOptions.Validate(args); err != nil {
		return err
	}
	assignments, err := parseAssignments(args, "")
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if !foodBundleInputs[a.input] {
			return fmt.Errorf("%s is not a food bundle input", a.input)
		}
	}
	return nil
}

func (o *FoodBundleOptions) Run(ctx context.Context, args []string) error {
	assignments, err := parseAssignments(args, "")
	if err != nil {
		return err
	}
	return o.withEnv(ctx, func(env *Env) error {
		if len(assignments) > 0 {
			if err := applyAssignments(ctx, io.Discard, env, assignments); err != nil {
				return err
			}
		}

		in := env.State.FoodBundleInputs()
		res := metrics.ComputeFoodBundle(in)
		env.Metrics.RecordComputation("food_bundle")

		out := foodBundle{
			Inputs:               in,
			FoodCustomersPct:     res.FoodCustomersPct,
			OtherCustomersPct:    res.OtherCustomersPct,
			Rows:                 res.Rows,
			MinimumAdoptionRate:  compare.Fixed(res.MinimumAdoptionRate, 0),
			MinimumAdoptionGrade: res.MinimumAdoptionGrade,
		}
		return o.print(o.out, out, func(w io.Writer) {
			printFoodBundle(w, out, env.Money)
		})
	})
}

func printFoodBundle(w io.Writer, fb foodBundle, money *compare.CurrencyFormatter) {
	fmt.Fprintf(w, "CONVERSION RATE:\t%s%%\n", compare.Fixed(fb.Inputs.ConversionRate, 0))
	fmt.Fprintf(w, "AVERAGE SPENDING:\t%s\n", money.Format(fb.Inputs.AverageSpending))
	fmt.Fprintf(w, "DISCOUNT RATE:\t%s%%\n", compare.Fixed(fb.Inputs.DiscountRate, 0))
	fmt.Fprintf(w, "TOTAL USERS:\t%s\n", money.Number(float64(fb.Inputs.TotalUsers), 0))
	fmt.Fprintf(w, "FOOD CUSTOMERS:\t%s%%\n", compare.Fixed(fb.FoodCustomersPct, 0))
	fmt.Fprintf(w, "OTHER CUSTOMERS:\t%s%%\n", compare.Fixed(fb.OtherCustomersPct, 0))
	fmt.Fprintf(w, "MINIMUM ADOPTION RATE:\t%s%% (%s)\n", fb.MinimumAdoptionRate, fb.MinimumAdoptionGrade)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "ADOPTION\tBASE FOOD REVENUE\tBUNDLE FOOD REVENUE")
	for _, r := range fb.Rows {
		fmt.Fprintf(w, "%d%%\t%s\t%s\n", r.AdoptionRate, money.Format(r.BaseFoodRevenue), money.Format(r.BundleFoodRevenue))
	}
}
