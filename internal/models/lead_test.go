package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLead_Validate(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name    string
		lead    Lead
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid lead",
			lead: Lead{
				CustomerID: customerID,
				Title:      "Website Redesign",
				Status:     LeadStatusNew,
				Value:      decimal.NewFromInt(15000),
			},
			wantErr: false,
		},
		{
			name: "zero value is allowed",
			lead: Lead{
				CustomerID: customerID,
				Title:      "Discovery Call",
				Status:     LeadStatusContacted,
				Value:      decimal.Zero,
			},
			wantErr: false,
		},
		{
			name: "missing customer",
			lead: Lead{
				Title:  "Website Redesign",
				Status: LeadStatusNew,
			},
			wantErr: true,
			errMsg:  "customer ID is required",
		},
		{
			name: "missing title",
			lead: Lead{
				CustomerID: customerID,
				Status:     LeadStatusNew,
			},
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name: "unknown status",
			lead: Lead{
				CustomerID: customerID,
				Title:      "Website Redesign",
				Status:     "Pending",
			},
			wantErr: true,
			errMsg:  "invalid lead status: Pending",
		},
		{
			name: "All is not a stored status",
			lead: Lead{
				CustomerID: customerID,
				Title:      "Website Redesign",
				Status:     LeadStatusFilterAll,
			},
			wantErr: true,
			errMsg:  "invalid lead status: All",
		},
		{
			name: "negative value",
			lead: Lead{
				CustomerID: customerID,
				Title:      "Website Redesign",
				Status:     LeadStatusNew,
				Value:      decimal.NewFromInt(-1),
			},
			wantErr: true,
			errMsg:  "value cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lead.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIsValidLeadStatus(t *testing.T) {
	for _, status := range LeadStatuses {
		assert.True(t, IsValidLeadStatus(status), status)
	}

	assert.False(t, IsValidLeadStatus(LeadStatusFilterAll))
	assert.False(t, IsValidLeadStatus(""))
	assert.False(t, IsValidLeadStatus("new"))
}

func TestLead_StatusHelpers(t *testing.T) {
	assert.True(t, (&Lead{Status: LeadStatusConverted}).IsConverted())
	assert.True(t, (&Lead{Status: LeadStatusNew}).IsOpen())
	assert.True(t, (&Lead{Status: LeadStatusContacted}).IsOpen())
	assert.False(t, (&Lead{Status: LeadStatusLost}).IsOpen())
}

func TestNewDashboardStats(t *testing.T) {
	stats := NewDashboardStats()

	require.Len(t, stats.CountByStatus, 4)
	for _, status := range LeadStatuses {
		count, ok := stats.CountByStatus[status]
		require.True(t, ok, "status %s must be present", status)
		assert.Equal(t, 0, count)
	}

	assert.True(t, stats.TotalValue.IsZero())
	assert.Equal(t, 0, stats.TotalLeads())
}
