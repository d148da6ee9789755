package main

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/brianvoe/gofakeit/v7"
	partnerapp "github.com/flexo/backend/internal/application/partner"
	prepressapp "github.com/flexo/backend/internal/application/prepress"
	"github.com/flexo/backend/internal/domain/prepress"
	"github.com/flexo/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedStates are the states most shops ship to
var seedStates = []string{"SP", "RJ", "MG", "PR", "SC", "RS", "GO", "BA", "PE"}

// processColors are assigned to profile channels in press order
var processColors = []string{"Cyan", "Magenta", "Yellow", "Black", "Pantone 485", "Pantone 300", "White", "Varnish"}

var pressModels = map[string][]string{
	"Bobst":       {"Masterflex", "Expert CI", "20SIX"},
	"Comexi":      {"F2 MB", "F1 XL"},
	"Mark Andy":   {"P5", "P7", "Digital Series"},
	"Nilpeter":    {"FA-17", "FB-3300"},
	"Windmoeller": {"Miraflex", "Novoflex"},
	"Heidelberg":  {"Gallus Labelmaster"},
	"Omet":        {"XFlex X6"},
	"Uteco":       {"Onyx XS", "Crystal"},
	"Koenig":      {"Evo XD"},
	"Soma":        {"Optima2"},
	"Edale":       {"FL3"},
	"Allstein":    {"ASF-1200"},
	"Focus Label": {"Proflex"},
}

type seedCounts struct {
	Transports int
	Customers  int
	Seed       uint64
}

// seeder creates demo data through the application services so every
// domain rule applies
type seeder struct {
	faker      *gofakeit.Faker
	transports *partnerapp.TransportService
	customers  *partnerapp.CustomerService
	printers   *prepressapp.PrinterService
	curves     *prepressapp.CurveService
	profiles   *prepressapp.ProfileService
}

type seedResult struct {
	Transports int
	Customers  int
	Printers   int
	Curves     int
	Profiles   int
}

func seedCmd() *cobra.Command {
	counts := seedCounts{Transports: 3, Customers: 20}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with realistic demo customers, presses and profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			customerRepo := persistence.NewGormCustomerRepository(db.DB)
			transportRepo := persistence.NewGormTransportRepository(db.DB)
			printerRepo := persistence.NewGormPrinterRepository(db.DB)
			curveRepo := persistence.NewGormCurveRepository(db.DB)
			profileRepo := persistence.NewGormProfileRepository(db.DB)
			blockRepo := persistence.NewGormDieCutBlockRepository(db.DB)
			orderRepo := persistence.NewGormServiceOrderRepository(db.DB)

			s := &seeder{
				faker:      gofakeit.New(counts.Seed),
				transports: partnerapp.NewTransportService(transportRepo, customerRepo, orderRepo),
				customers:  partnerapp.NewCustomerService(customerRepo, transportRepo, orderRepo, printerRepo, blockRepo, nil),
				printers:   prepressapp.NewPrinterService(printerRepo, customerRepo, profileRepo, orderRepo),
				curves:     prepressapp.NewCurveService(curveRepo, profileRepo),
				profiles:   prepressapp.NewProfileService(profileRepo, printerRepo, curveRepo, orderRepo),
			}
			res, err := s.run(cmd.Context(), counts)
			if err != nil {
				return err
			}
			log.Info("Seed finished",
				zap.Int("transports", res.Transports),
				zap.Int("customers", res.Customers),
				zap.Int("printers", res.Printers),
				zap.Int("curves", res.Curves),
				zap.Int("profiles", res.Profiles),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "transports=%d customers=%d printers=%d curves=%d profiles=%d\n",
				res.Transports, res.Customers, res.Printers, res.Curves, res.Profiles)
			return nil
		},
	}

	cmd.Flags().IntVar(&counts.Transports, "transports", counts.Transports, "carriers to create")
	cmd.Flags().IntVar(&counts.Customers, "customers", counts.Customers, "customers to create, each with one or two presses")
	cmd.Flags().Uint64Var(&counts.Seed, "seed", 0, "faker seed, 0 picks a random one")
	return cmd
}

func (s *seeder) run(ctx context.Context, counts seedCounts) (seedResult, error) {
	var res seedResult

	curveIDs := make([]uuid.UUID, 0, 3)
	for _, req := range standardCurves() {
		c, err := s.curves.Create(ctx, req)
		if err != nil {
			return res, fmt.Errorf("curve %s: %w", req.Name, err)
		}
		curveIDs = append(curveIDs, c.ID)
		res.Curves++
	}

	transportIDs := make([]uuid.UUID, 0, counts.Transports)
	for i := 0; i < counts.Transports; i++ {
		t, err := s.transports.Create(ctx, s.transportRequest())
		if err != nil {
			return res, fmt.Errorf("transport: %w", err)
		}
		transportIDs = append(transportIDs, t.ID)
		res.Transports++
	}

	for i := 0; i < counts.Customers; i++ {
		req := s.customerRequest()
		if len(transportIDs) > 0 {
			id := transportIDs[s.faker.Number(0, len(transportIDs)-1)]
			req.TransportID = &id
		}
		c, err := s.customers.Create(ctx, req)
		if err != nil {
			return res, fmt.Errorf("customer %s: %w", req.Name, err)
		}
		res.Customers++

		for p := s.faker.Number(1, 2); p > 0; p-- {
			pr, err := s.printers.Create(ctx, s.printerRequest(c.ID))
			if err != nil {
				return res, fmt.Errorf("printer for %s: %w", c.Name, err)
			}
			res.Printers++

			if _, err := s.profiles.Create(ctx, s.profileRequest(pr.ID, pr.Colors, curveIDs)); err != nil {
				return res, fmt.Errorf("profile for %s: %w", pr.Name, err)
			}
			res.Profiles++
		}
	}
	return res, nil
}

func standardCurves() []prepressapp.CurveRequest {
	return []prepressapp.CurveRequest{
		{
			Name:        "Linear",
			Description: "No compensation",
			Points:      []prepressapp.CurvePointRequest{{Input: 0, Output: 0}, {Input: 100, Output: 100}},
		},
		{
			Name:        "Ganho 12%",
			Description: "Compensates 12% dot gain at mid tones",
			Points: []prepressapp.CurvePointRequest{
				{Input: 0, Output: 0}, {Input: 2, Output: 1}, {Input: 50, Output: 38}, {Input: 100, Output: 100},
			},
		},
		{
			Name:        "Ganho 18%",
			Description: "Compensates 18% dot gain at mid tones",
			Points: []prepressapp.CurvePointRequest{
				{Input: 0, Output: 0}, {Input: 2, Output: 1}, {Input: 50, Output: 32}, {Input: 100, Output: 100},
			},
		},
	}
}

func (s *seeder) transportRequest() partnerapp.TransportRequest {
	return partnerapp.TransportRequest{
		Name:     s.faker.Company() + " Transportes",
		Document: fakeCNPJ(s.faker),
		Phone:    s.faker.Numerify("(11) 9####-####"),
		Email:    s.faker.Email(),
	}
}

func (s *seeder) customerRequest() partnerapp.CustomerRequest {
	name := s.faker.Company()
	return partnerapp.CustomerRequest{
		Name:        name + " Embalagens Ltda",
		TradeName:   name,
		Document:    fakeCNPJ(s.faker),
		Email:       s.faker.Email(),
		Phone:       s.faker.Numerify("(##) ####-####"),
		ContactName: s.faker.Name(),
		Address: partnerapp.AddressRequest{
			Street:   s.faker.Street(),
			Number:   s.faker.Numerify("###"),
			District: s.faker.City(),
			City:     s.faker.City(),
			State:    s.faker.RandomString(seedStates),
			ZipCode:  s.faker.Numerify("#####-###"),
		},
	}
}

func (s *seeder) printerRequest(customerID uuid.UUID) prepressapp.PrinterRequest {
	brand := s.faker.RandomString(slices.Sorted(maps.Keys(pressModels)))
	model := s.faker.RandomString(pressModels[brand])
	return prepressapp.PrinterRequest{
		CustomerID:   customerID,
		Name:         brand + " " + model,
		Manufacturer: brand,
		Model:        model,
		Colors:       s.faker.Number(4, 8),
		MaxWidthMM:   s.faker.RandomInt([]int{330, 430, 670, 1270, 1650}),
	}
}

func (s *seeder) profileRequest(printerID uuid.UUID, colors int, curveIDs []uuid.UUID) prepressapp.ProfileRequest {
	angles := []float64{15, 75, 0, 45, 15, 75, 0, 45}
	if colors > len(processColors) {
		colors = len(processColors)
	}
	lpi := 100 + 10*s.faker.Number(0, 7)
	req := prepressapp.ProfileRequest{
		PrinterID: printerID,
		Name:      fmt.Sprintf("%d lpi padrão", lpi),
		Lineature: lpi,
		DotType:   s.faker.RandomString([]string{string(prepress.DotRound), string(prepress.DotElliptical), string(prepress.DotHybrid)}),
		Colors:    make([]prepressapp.ProfileColorRequest, colors),
	}
	for i := range req.Colors {
		req.Colors[i] = prepressapp.ProfileColorRequest{Color: processColors[i], Angle: angles[i]}
		if len(curveIDs) > 0 {
			id := curveIDs[s.faker.Number(0, len(curveIDs)-1)]
			req.Colors[i].CurveID = &id
		}
	}
	return req
}

// fakeCNPJ builds a CNPJ for a head office (branch 0001) with valid check
// digits
func fakeCNPJ(f *gofakeit.Faker) string {
	d := make([]byte, 0, 14)
	for i := 0; i < 8; i++ {
		d = append(d, byte('0'+f.Number(0, 9)))
	}
	d = append(d, '0', '0', '0', '1')
	d = append(d, cnpjCheckDigit(d))
	d = append(d, cnpjCheckDigit(d))
	return string(d)
}

func cnpjCheckDigit(digits []byte) byte {
	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	w := weights[len(weights)-len(digits):]
	sum := 0
	for i, c := range digits {
		sum += int(c-'0') * w[i]
	}
	if rem := sum % 11; rem >= 2 {
		return byte('0' + 11 - rem)
	}
	return '0'
}
