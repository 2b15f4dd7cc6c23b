package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	qrbill "github.com/Yatekii/qrbill"
	"github.com/Yatekii/qrbill/config"
	"github.com/Yatekii/qrbill/formatter"
	"github.com/Yatekii/qrbill/internal"
	"github.com/Yatekii/qrbill/label"
	"github.com/Yatekii/qrbill/reference"
)

var format string

func outputFormat() string {
	if format != "" {
		return format
	}
	return config.Config.Output.Format
}

func language() label.Language {
	return label.FromCode(config.Config.Output.Language)
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse and validate the additional information field of a QR bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			var bi qrbill.BillingInfos
			var err error
			if strings.Contains(raw, "//S1") {
				bi, err = qrbill.Parse(raw)
			} else {
				bi, err = qrbill.New().AddUnstructured(raw)
			}
			if err != nil {
				return err
			}
			report := formatter.WrapBillingInfos(bi)
			rb := formatter.NewResponseBuilder()
			if outputFormat() == "json" {
				fmt.Println(string(rb.BuildJSON(report)))
				return nil
			}
			fmt.Print(string(rb.BuildText(report, language())))
			return nil
		},
	}
}

func newESRCmd() *cobra.Command {
	var generate bool
	var iban string
	cmd := &cobra.Command{
		Use:   "esr <number>",
		Short: "Validate an ESR/QRR reference, or compute its check digit with --generate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var esr reference.ESR
			var err error
			if generate {
				esr, err = reference.TryWithoutChecksum(args[0])
			} else {
				esr, err = reference.TryWithChecksum(args[0])
			}
			if err != nil {
				return err
			}
			return emitReference(reference.QRR(esr), iban)
		},
	}
	cmd.Flags().BoolVar(&generate, "generate", false, "compute and append the check digit")
	cmd.Flags().StringVar(&iban, "iban", "", "account IBAN to check scheme compatibility against")
	return cmd
}

func newSCORCmd() *cobra.Command {
	var generate bool
	var iban string
	cmd := &cobra.Command{
		Use:   "scor <text>",
		Short: "Validate an ISO 11649 creditor reference, or derive one from text with --generate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ref reference.ISO11649
			if generate {
				ref = reference.New(args[0])
			} else {
				var err error
				ref, err = reference.TryNew(args[0])
				if err != nil {
					return err
				}
			}
			return emitReference(reference.SCOR(ref), iban)
		},
	}
	cmd.Flags().BoolVar(&generate, "generate", false, "derive a reference from arbitrary text")
	cmd.Flags().StringVar(&iban, "iban", "", "account IBAN to check scheme compatibility against")
	return cmd
}

func emitReference(ref reference.Reference, iban string) error {
	if iban != "" {
		if err := ref.CompatibleWithIBAN(iban); err != nil {
			return err
		}
	}
	report := formatter.WrapReference(ref)
	rb := formatter.NewResponseBuilder()
	if outputFormat() == "json" {
		fmt.Println(string(rb.BuildJSON(report)))
		return nil
	}
	fmt.Print(string(rb.BuildReferenceText(report, language())))
	return nil
}

func main() {
	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	root := &cobra.Command{
		Use:           "qrbill-refs",
		Short:         "Validate and encode Swiss payment references and Swico billing information",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&format, "format", "", "output format: json|text (overrides config)")
	root.AddCommand(newParseCmd(), newESRCmd(), newSCORCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
