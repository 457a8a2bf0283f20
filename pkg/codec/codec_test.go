package codec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carewise/hms/pkg/entity"
	"github.com/carewise/hms/pkg/errors"
)

func TestDecodeAllMedicines(t *testing.T) {
	input := "id,medicineName,stockQuantity,unitCost,dosage,lowStockThreshold\n" +
		"MED001,Paracetamol,120,0.50,500.00,30\n" +
		"MED002,Ibuprofen,18,0.80,200.00,20\n"

	c := New(&entity.MedicineCatalog)
	meds, err := c.DecodeAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, meds, 2)

	assert.Equal(t, "MED001", meds[0].ID)
	assert.Equal(t, "Paracetamol", meds[0].Name)
	assert.Equal(t, 120, meds[0].StockQuantity)
	assert.Equal(t, 0.5, meds[0].UnitCost)
	assert.Equal(t, 500.0, meds[0].Dosage)
	assert.Equal(t, 30, meds[0].LowStockThreshold)
}

func TestRoundTrip(t *testing.T) {
	c := New(&entity.AppointmentCatalog)
	slot := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	appt := entity.NewAppointment("APPT007", "P003", "D001", entity.ServiceXRay, slot)
	appt.Status = entity.ApptConfirmed
	appt.Notes = "bring prior scans"

	var buf bytes.Buffer
	require.NoError(t, c.EncodeAll(&buf, []*entity.Appointment{appt}))

	decoded, err := c.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, appt, decoded[0])
}

func TestDecodeEmptyCellLeavesZeroValue(t *testing.T) {
	input := "id,patientId,doctorId,apptDateTime,service,status,diagnosis,notes\n" +
		"APPT001,P001,D001,2025-03-14T09:00,CONSULTATION,PENDING,,\n"

	c := New(&entity.AppointmentCatalog)
	appts, err := c.DecodeAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Empty(t, appts[0].Diagnosis)
	assert.Empty(t, appts[0].Notes)
}

func TestDecodeEnumIsCaseInsensitive(t *testing.T) {
	input := "id,patientId,doctorId,apptDateTime,service,status,diagnosis,notes\n" +
		"APPT001,P001,D001,2025-03-14T09:00,consultation,Pending,,\n"

	c := New(&entity.AppointmentCatalog)
	appts, err := c.DecodeAll(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceConsultation, appts[0].Service)
	assert.Equal(t, entity.ApptPending, appts[0].Status)
}

func TestDecodeMalformedCellFailsWholeLoad(t *testing.T) {
	input := "id,medicineName,stockQuantity,unitCost,dosage,lowStockThreshold\n" +
		"MED001,Paracetamol,120,0.50,500.00,30\n" +
		"MED002,Ibuprofen,many,0.80,200.00,20\n"

	c := New(&entity.MedicineCatalog)
	meds, err := c.DecodeAll(strings.NewReader(input))
	assert.Nil(t, meds)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFormat))
	assert.Contains(t, err.Error(), "many")
	assert.Contains(t, err.Error(), "line 3")
}

func TestDecodeUnknownHeaderFieldFails(t *testing.T) {
	input := "id,medicineName,potency\nMED001,Paracetamol,9\n"

	c := New(&entity.MedicineCatalog)
	_, err := c.DecodeAll(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFormat))
	assert.Contains(t, err.Error(), "potency")
}

func TestDecodeShortRowFails(t *testing.T) {
	input := "id,medicineName,stockQuantity,unitCost,dosage,lowStockThreshold\n" +
		"MED001,Paracetamol\n"

	c := New(&entity.MedicineCatalog)
	_, err := c.DecodeAll(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFormat))
}

func TestDecodeEmptyFileFails(t *testing.T) {
	c := New(&entity.MedicineCatalog)
	_, err := c.DecodeAll(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeStorage))
}

func TestDecodeSkipsBlankLines(t *testing.T) {
	input := "id,medicineName,stockQuantity,unitCost,dosage,lowStockThreshold\n" +
		"\n" +
		"MED001,Paracetamol,120,0.50,500.00,30\n" +
		"\n"

	c := New(&entity.MedicineCatalog)
	meds, err := c.DecodeAll(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, meds, 1)
}

func TestStaffDecodeDispatchesOnIDPrefix(t *testing.T) {
	input := "isPatient,id,password,name,gender,dob,role\n" +
		"false,D001,abc,Alice Tan,F,1980-04-02,DOCTOR\n" +
		"false,PH001,def,Bob Lee,M,1990-09-17,PHARMACIST\n" +
		"false,A001,ghi,Carol Ng,F,1975-12-30,ADMINISTRATOR\n"

	c := New(&entity.StaffCatalog)
	staff, err := c.DecodeAll(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, staff, 3)

	byID := map[string]entity.Role{}
	for _, s := range staff {
		byID[s.GetID()] = s.Role
	}
	assert.Equal(t, entity.RoleDoctor, byID["D001"])
	assert.Equal(t, entity.RolePharmacist, byID["PH001"])
	assert.Equal(t, entity.RoleAdministrator, byID["A001"])
}

func TestStaffDecodeRejectsUnknownPrefix(t *testing.T) {
	input := "isPatient,id,password,name,gender,dob,role\n" +
		"false,X001,abc,Nobody,F,1980-04-02,DOCTOR\n"

	c := New(&entity.StaffCatalog)
	_, err := c.DecodeAll(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFormat))
}

func TestEncodeFloatsUseTwoDecimals(t *testing.T) {
	c := New(&entity.MedicineCatalog)
	med := entity.NewMedicine("MED001", "Paracetamol", 120, 0.5, 500, 30)

	var buf bytes.Buffer
	require.NoError(t, c.EncodeAll(&buf, []*entity.Medicine{med}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "MED001,Paracetamol,120,0.50,500.00,30", lines[1])
}

func TestEncodeZeroTimeIsEmptyCell(t *testing.T) {
	c := New(&entity.AppointmentCatalog)
	appt := &entity.Appointment{
		ID: "APPT001", PatientID: "P001", DoctorID: "D001",
		Service: entity.ServiceLabTest, Status: entity.ApptPending,
	}

	var buf bytes.Buffer
	require.NoError(t, c.EncodeAll(&buf, []*entity.Appointment{appt}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "APPT001,P001,D001,,LABTEST,PENDING,,", lines[1])
}

func TestEncodeGolden(t *testing.T) {
	c := New(&entity.MedicineCatalog)
	meds := []*entity.Medicine{
		entity.NewMedicine("MED001", "Paracetamol", 120, 0.5, 500, 30),
		entity.NewMedicine("MED002", "Ibuprofen", 18, 0.8, 200, 20),
	}

	var buf bytes.Buffer
	require.NoError(t, c.EncodeAll(&buf, meds))

	g := goldie.New(t, goldie.WithNameSuffix(".golden"))
	g.Assert(t, "medicine", buf.Bytes())
}
