package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/asistpro/asistencia-backend-go/internal/domain/attendance"
)

func statisticsFilter(req attendance.StatisticsRequest) attendance.StatisticsFilter {
	filter := attendance.StatisticsFilter{
		EmployeeID: req.EmployeeID,
		CompanyID:  req.CompanyID,
	}
	if req.StartDate != "" {
		if start, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local); err == nil {
			filter.StartDate = &start
		}
	}
	if req.EndDate != "" {
		if end, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local); err == nil {
			filter.EndDate = &end
		}
	}
	return filter
}

// Statistics implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Statistics(ctx context.Context, req attendance.StatisticsRequest) (attendance.StatisticsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.StatisticsResponse{}, err
	}

	stats, err := s.AttendanceRepository.Statistics(ctx, statisticsFilter(req))
	if err != nil {
		return attendance.StatisticsResponse{}, err
	}

	response := attendance.StatisticsResponse{
		Summary: attendance.StatisticsSummary{
			Total:   stats.Total,
			Entries: stats.Entries,
			Exits:   stats.Exits,
		},
		PerDay:    make([]attendance.DayBreakdown, 0, len(stats.PerDay)),
		PerMethod: make([]attendance.MethodBreakdown, 0, len(stats.PerMethod)),
	}

	if req.StartDate != "" {
		response.Summary.Period.StartDate = &req.StartDate
	}
	if req.EndDate != "" {
		response.Summary.Period.EndDate = &req.EndDate
	}

	for _, dc := range stats.PerDay {
		response.PerDay = append(response.PerDay, attendance.DayBreakdown{
			Date:    dc.Date.Format("2006-01-02"),
			Total:   dc.Total,
			Entries: dc.Entries,
			Exits:   dc.Exits,
		})
	}

	for _, mc := range stats.PerMethod {
		response.PerMethod = append(response.PerMethod, attendance.MethodBreakdown{
			Method:      string(mc.Method),
			MethodLabel: attendance.MethodLabel(mc.Method),
			Total:       mc.Total,
		})
	}

	// The top-employee ranking only makes sense for multi-employee scopes.
	if req.EmployeeID == "" {
		for _, ec := range stats.TopEmployees {
			response.TopEmployees = append(response.TopEmployees, attendance.EmployeeBreakdown{
				EmployeeID: ec.EmployeeID,
				FullName:   ec.FullName,
				Total:      ec.Total,
			})
		}
	}

	return response, nil
}

// ExportStatistics implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportStatistics(ctx context.Context, req attendance.StatisticsRequest) ([]byte, error) {
	stats, err := s.Statistics(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	f.SetSheetName("Sheet1", summarySheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	summaryRows := [][]interface{}{
		{"Attendance statistics"},
		{},
		{"Total records", stats.Summary.Total},
		{"Entries", stats.Summary.Entries},
		{"Exits", stats.Summary.Exits},
	}
	if stats.Summary.Period.StartDate != nil {
		summaryRows = append(summaryRows, []interface{}{"From", *stats.Summary.Period.StartDate})
	}
	if stats.Summary.Period.EndDate != nil {
		summaryRows = append(summaryRows, []interface{}{"To", *stats.Summary.Period.EndDate})
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		f.SetSheetRow(summarySheet, cell, &row)
	}
	f.SetCellStyle(summarySheet, "A1", "A1", headerStyle)
	f.SetColWidth(summarySheet, "A", "A", 20)

	const daySheet = "Per day"
	f.NewSheet(daySheet)
	dayHeaders := []interface{}{"Date", "Total", "Entries", "Exits"}
	f.SetSheetRow(daySheet, "A1", &dayHeaders)
	f.SetCellStyle(daySheet, "A1", "D1", headerStyle)
	for i, dc := range stats.PerDay {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{dc.Date, dc.Total, dc.Entries, dc.Exits}
		f.SetSheetRow(daySheet, cell, &row)
	}
	f.SetColWidth(daySheet, "A", "A", 14)

	const methodSheet = "Per method"
	f.NewSheet(methodSheet)
	methodHeaders := []interface{}{"Method", "Total"}
	f.SetSheetRow(methodSheet, "A1", &methodHeaders)
	f.SetCellStyle(methodSheet, "A1", "B1", headerStyle)
	for i, mc := range stats.PerMethod {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{mc.MethodLabel, mc.Total}
		f.SetSheetRow(methodSheet, cell, &row)
	}
	f.SetColWidth(methodSheet, "A", "A", 25)

	if len(stats.TopEmployees) > 0 {
		const topSheet = "Most active"
		f.NewSheet(topSheet)
		topHeaders := []interface{}{"Employee", "Records"}
		f.SetSheetRow(topSheet, "A1", &topHeaders)
		f.SetCellStyle(topSheet, "A1", "B1", headerStyle)
		for i, ec := range stats.TopEmployees {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			row := []interface{}{ec.FullName, ec.Total}
			f.SetSheetRow(topSheet, cell, &row)
		}
		f.SetColWidth(topSheet, "A", "A", 35)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return buf.Bytes(), nil
}
