package contracts

import "time"

// Contract is a funding agreement identified by (ContractNumber, ContractVersion) and a surrogate ID.
type Contract struct {
	ID                       int              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Ukprn                    int              `gorm:"column:ukprn;index" json:"ukprn"`
	Title                    string           `gorm:"column:title" json:"title"`
	ContractNumber           string           `gorm:"column:contract_number;not null;uniqueIndex:idx_contract_number_version" json:"contractNumber"`
	ContractVersion          int              `gorm:"column:contract_version;not null;uniqueIndex:idx_contract_number_version" json:"contractVersion"`
	Status                   ContractStatus   `gorm:"column:status;not null;index" json:"status"`
	Year                     string           `gorm:"column:year" json:"year"`
	FundingType              int              `gorm:"column:funding_type" json:"fundingType"`
	AmendmentType            int              `gorm:"column:amendment_type" json:"amendmentType"`
	ParentContractNumber     string           `gorm:"column:parent_contract_number" json:"parentContractNumber,omitempty"`
	ContractAllocationNumber string           `gorm:"column:contract_allocation_number" json:"contractAllocationNumber,omitempty"`
	StartDate                *time.Time       `gorm:"column:start_date" json:"startDate,omitempty"`
	EndDate                  *time.Time       `gorm:"column:end_date" json:"endDate,omitempty"`
	SignedBy                 string           `gorm:"column:signed_by" json:"signedBy,omitempty"`
	SignedByDisplayName      string           `gorm:"column:signed_by_display_name" json:"signedByDisplayName,omitempty"`
	SignedOn                 *time.Time       `gorm:"column:signed_on" json:"signedOn,omitempty"`
	WasManuallyApproved      bool             `gorm:"column:was_manually_approved;not null;default:false" json:"wasManuallyApproved"`
	HasNotificationBeenRead  bool             `gorm:"column:has_notification_been_read;not null;default:false" json:"hasNotificationBeenRead"`
	NotificationReadBy       string           `gorm:"column:notification_read_by" json:"notificationReadBy,omitempty"`
	NotificationReadAt       *time.Time       `gorm:"column:notification_read_at" json:"notificationReadAt,omitempty"`
	LastEmailReminderSent    *time.Time       `gorm:"column:last_email_reminder_sent" json:"lastEmailReminderSent,omitempty"`
	CreatedBy                string           `gorm:"column:created_by" json:"createdBy,omitempty"`
	LastUpdatedBy            string           `gorm:"column:last_updated_by" json:"lastUpdatedBy,omitempty"`
	CreatedAt                time.Time        `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	LastUpdatedAt            time.Time        `gorm:"column:last_updated_at;autoUpdateTime" json:"lastUpdatedAt"`
	Content                  *ContractContent `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
}

func (Contract) TableName() string { return "contract" }

// ContractContent is the document attached to a contract.
type ContractContent struct {
	ID         int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ContractID int       `gorm:"column:contract_id;not null;uniqueIndex" json:"contractId"`
	FileName   string    `gorm:"column:file_name;not null" json:"fileName"`
	Size       int64     `gorm:"column:size;not null" json:"size"`
	Content    []byte    `gorm:"column:content" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ContractContent) TableName() string { return "contract_content" }
