package attendance

import "context"

type AttendanceService interface {
	// Mark processes a QR scan for the authenticated account and produces
	// exactly one new record, inferring its kind from the day's history.
	Mark(ctx context.Context, req MarkRequest) (MarkResponse, error)

	// MyRecords returns the caller's own records, newest first.
	MyRecords(ctx context.Context, filter MyRecordsFilter) ([]RecordResponse, error)

	// DailySummary reports today's records, the next expected action and the
	// approximate worked hours for the caller's employee.
	DailySummary(ctx context.Context) (DailySummaryResponse, error)

	// Statistics computes the reporting aggregates for the given filters.
	Statistics(ctx context.Context, req StatisticsRequest) (StatisticsResponse, error)

	// ExportStatistics renders the same aggregates as an xlsx workbook.
	ExportStatistics(ctx context.Context, req StatisticsRequest) ([]byte, error)

	// ActiveQRCodes lists the active marking points of the caller's company.
	ActiveQRCodes(ctx context.Context) ([]QRCodeResponse, error)

	// Administrative record surface.
	CreateManual(ctx context.Context, req ManualRecordRequest) (RecordResponse, error)
	List(ctx context.Context, filter ListFilter) ([]RecordResponse, int64, error)
	GetByID(ctx context.Context, id string) (RecordResponse, error)
	Update(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error

	// QR code administration.
	CreateQRCode(ctx context.Context, req CreateQRCodeRequest) (QRCodeResponse, error)
	ListQRCodes(ctx context.Context, companyID string, onlyActive bool) ([]QRCodeResponse, error)
	GetQRCode(ctx context.Context, id string) (QRCodeResponse, error)
	UpdateQRCode(ctx context.Context, id string, req UpdateQRCodeRequest) (QRCodeResponse, error)
	DeleteQRCode(ctx context.Context, id string) error
}
