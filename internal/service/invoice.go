package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aldosh/aldo/internal/config"
	"github.com/aldosh/aldo/internal/dateutil"
	"github.com/aldosh/aldo/internal/entry"
	"github.com/aldosh/aldo/internal/invoice"
	"github.com/aldosh/aldo/internal/ledger"
	"github.com/aldosh/aldo/internal/storage"
)

// ErrNoBillableHours is returned when an invoice period contains no
// ledger entries.
var ErrNoBillableHours = errors.New("no work hours recorded for this period")

// dueDays is how many days after issue an invoice is due.
const dueDays = 30

// GenerateResult describes a generated (or regenerated) invoice.
type GenerateResult struct {
	Number      int
	FullNumber  string
	Start       dateutil.Date
	End         dateutil.Date
	TotalHours  decimal.Decimal
	Amount      decimal.Decimal
	EntryCount  int
	OutputPath  string
	Regenerated bool
}

// ConfirmResult describes a confirmed invoice.
type ConfirmResult struct {
	Number      int
	FullNumber  string
	ConfirmedOn dateutil.Date
	NextNumber  int
	NextStart   dateutil.Date
}

// InvoiceService generates, regenerates and confirms invoices.
type InvoiceService struct {
	dataPath   string
	configPath string
	today      func() dateutil.Date
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(dataPath, configPath string) *InvoiceService {
	return &InvoiceService{
		dataPath:   dataPath,
		configPath: configPath,
		today:      dateutil.Today,
	}
}

// Generate produces a PDF invoice at outPath.
//
// The token selects the mode: an invoice number (with or without the
// configured prefix) regenerates that confirmed invoice's period with
// its original number; a date token (or an empty token, meaning today)
// is the end date of a new invoice whose start is the day after the
// last confirmed invoice, or the earliest ledger entry when nothing has
// been confirmed yet.
//
// Generating only offers a number: the counter is untouched until
// Confirm, so a failed or abandoned render never consumes a number.
func (s *InvoiceService) Generate(token, outPath string) (GenerateResult, error) {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return GenerateResult{}, err
	}

	data, err := storage.LoadData(s.dataPath)
	if err != nil {
		return GenerateResult{}, err
	}
	l := ledger.FromEntries(data.Entries)

	if number, ok := invoice.ParseNumberToken(token, cfg.Invoice.Prefix); ok && token != "" {
		return s.regenerate(cfg, &data.Invoices, l, number, outPath)
	}

	end := s.today()
	if token != "" {
		end, err = dateutil.Resolve(token, s.today())
		if err != nil {
			return GenerateResult{}, err
		}
	}

	start, err := s.periodStart(&data.Invoices, l)
	if err != nil {
		return GenerateResult{}, err
	}

	entries, err := l.EntriesInRange(start, end)
	if err != nil {
		return GenerateResult{}, err
	}
	if len(entries) == 0 {
		return GenerateResult{}, fmt.Errorf("%w (%s to %s)", ErrNoBillableHours, start, end)
	}

	number := invoice.NewAllocator(&cfg.Invoice).PeekNext()
	result := GenerateResult{
		Number:     number,
		FullNumber: invoice.FormatNumber(cfg.Invoice.Prefix, number),
		Start:      start,
		End:        end,
		TotalHours: ledger.SumHours(entries),
		EntryCount: len(entries),
		OutputPath: outPath,
	}
	result.Amount = result.TotalHours.Mul(cfg.Payment.HourlyRate)

	if err := invoice.Compose(s.buildDoc(cfg, result, entries), outPath); err != nil {
		return GenerateResult{}, fmt.Errorf("failed to write invoice PDF: %w", err)
	}

	// Remember the offered number and period so confirm can commit
	// exactly what was generated.
	data.Invoices.SetPending(invoice.Record{Number: number, Start: start, End: end})
	if err := storage.SaveData(s.dataPath, data); err != nil {
		return GenerateResult{}, fmt.Errorf("failed to save invoice records: %w", err)
	}

	return result, nil
}

// Confirm marks a generated invoice as sent, advancing the durable
// counter. The number must match the pending generated invoice and the
// current counter; anything else is rejected without mutation.
func (s *InvoiceService) Confirm(numberToken, dateToken string) (ConfirmResult, error) {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return ConfirmResult{}, err
	}

	number, ok := invoice.ParseNumberToken(numberToken, cfg.Invoice.Prefix)
	if !ok {
		return ConfirmResult{}, fmt.Errorf("invalid invoice number %q", numberToken)
	}

	on := s.today()
	if dateToken != "" {
		on, err = dateutil.Resolve(dateToken, s.today())
		if err != nil {
			return ConfirmResult{}, err
		}
	}

	data, err := storage.LoadData(s.dataPath)
	if err != nil {
		return ConfirmResult{}, err
	}

	rec, err := data.Invoices.ConfirmPending(number, on)
	if err != nil {
		return ConfirmResult{}, err
	}

	next, err := invoice.NewAllocator(&cfg.Invoice).Confirm(number)
	if err != nil {
		return ConfirmResult{}, err
	}

	// Persist the counter before the records: if the second write
	// fails the number is already burned, which beats ever issuing
	// it twice.
	if err := config.Save(s.configPath, cfg); err != nil {
		return ConfirmResult{}, fmt.Errorf("failed to save invoice counter: %w", err)
	}
	if err := storage.SaveData(s.dataPath, data); err != nil {
		return ConfirmResult{}, fmt.Errorf("failed to save invoice records: %w", err)
	}

	return ConfirmResult{
		Number:      number,
		FullNumber:  invoice.FormatNumber(cfg.Invoice.Prefix, number),
		ConfirmedOn: on,
		NextNumber:  next,
		NextStart:   rec.End.AddDays(1),
	}, nil
}

// PeekNext returns the invoice number the next generation will offer.
func (s *InvoiceService) PeekNext() (int, error) {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return 0, err
	}
	return invoice.NewAllocator(&cfg.Invoice).PeekNext(), nil
}

func (s *InvoiceService) regenerate(cfg config.Config, records *invoice.Records, l *ledger.Ledger, number int, outPath string) (GenerateResult, error) {
	rec, ok := records.ByNumber(number)
	if !ok {
		return GenerateResult{}, fmt.Errorf("invoice %d not found in confirmed invoices", number)
	}

	entries, err := l.EntriesInRange(rec.Start, rec.End)
	if err != nil {
		return GenerateResult{}, err
	}

	result := GenerateResult{
		Number:      rec.Number,
		FullNumber:  invoice.FormatNumber(cfg.Invoice.Prefix, rec.Number),
		Start:       rec.Start,
		End:         rec.End,
		TotalHours:  ledger.SumHours(entries),
		EntryCount:  len(entries),
		OutputPath:  outPath,
		Regenerated: true,
	}
	result.Amount = result.TotalHours.Mul(cfg.Payment.HourlyRate)

	if err := invoice.Compose(s.buildDoc(cfg, result, entries), outPath); err != nil {
		return GenerateResult{}, fmt.Errorf("failed to write invoice PDF: %w", err)
	}
	return result, nil
}

func (s *InvoiceService) periodStart(records *invoice.Records, l *ledger.Ledger) (dateutil.Date, error) {
	if records.LastConfirmed != nil {
		return records.LastConfirmed.End.AddDays(1), nil
	}
	if earliest, ok := l.EarliestDate(); ok {
		return earliest, nil
	}
	return dateutil.Date{}, ErrNoBillableHours
}

func (s *InvoiceService) buildDoc(cfg config.Config, result GenerateResult, entries []entry.HourEntry) invoice.Doc {
	issue := s.today()
	return invoice.Doc{
		Number:     result.FullNumber,
		IssueDate:  issue,
		DueDate:    issue.AddDays(dueDays),
		Start:      result.Start,
		End:        result.End,
		Entries:    entries,
		TotalHours: result.TotalHours,
		HourlyRate: cfg.Payment.HourlyRate,
		Currency:   cfg.Payment.Currency,
		Business:   cfg.Business,
		Client:     cfg.Client,
		Terms:      cfg.Payment.Terms,
		FooterText: cfg.Invoice.FooterText,
	}
}
