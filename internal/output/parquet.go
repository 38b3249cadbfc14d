package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chrisdamba/foodataseed/internal/cloudwriter"
	"github.com/chrisdamba/foodataseed/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ParquetSink writes one <table>.parquet per entity collection, for
// analytical engines that prefer columnar files over SQL. Files go to the
// local staging directory, or to an S3 bucket when the cloud factory is set.
// Timestamps are epoch seconds; the optional order fields use OPTIONAL
// repetition so absent values survive the round trip.
type ParquetSink struct {
	basePath string
	folder   string

	cloud  cloudwriter.CloudWriterFactory
	bucket string
}

func NewParquetSink(config *models.Config) (*ParquetSink, error) {
	p := &ParquetSink{
		basePath: config.OutputPath,
		folder:   config.OutputFolder,
	}

	if config.OutputDestination == "s3" {
		factory, err := cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
		}
		p.cloud = factory
		p.bucket = config.CloudStorage.BucketName
	}

	return p, nil
}

type restaurantRow struct {
	ID             int64   `parquet:"name=id,type=INT64"`
	Name           string  `parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	CuisineType    string  `parquet:"name=cuisine_type,type=BYTE_ARRAY,convertedtype=UTF8"`
	Address        string  `parquet:"name=address,type=BYTE_ARRAY,convertedtype=UTF8"`
	Latitude       float64 `parquet:"name=latitude,type=DOUBLE"`
	Longitude      float64 `parquet:"name=longitude,type=DOUBLE"`
	Rating         float64 `parquet:"name=rating,type=DOUBLE"`
	CreatedDate    string  `parquet:"name=created_date,type=BYTE_ARRAY,convertedtype=UTF8"`
	OperatingHours string  `parquet:"name=operating_hours,type=BYTE_ARRAY,convertedtype=UTF8"`
	CommissionRate float64 `parquet:"name=commission_rate,type=DOUBLE"`
	IsActive       bool    `parquet:"name=is_active,type=BOOLEAN"`
}

type customerRow struct {
	ID               int64   `parquet:"name=id,type=INT64"`
	Name             string  `parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Email            string  `parquet:"name=email,type=BYTE_ARRAY,convertedtype=UTF8"`
	Phone            string  `parquet:"name=phone,type=BYTE_ARRAY,convertedtype=UTF8"`
	Address          string  `parquet:"name=address,type=BYTE_ARRAY,convertedtype=UTF8"`
	Latitude         float64 `parquet:"name=latitude,type=DOUBLE"`
	Longitude        float64 `parquet:"name=longitude,type=DOUBLE"`
	RegistrationDate string  `parquet:"name=registration_date,type=BYTE_ARRAY,convertedtype=UTF8"`
	LastOrderDate    string  `parquet:"name=last_order_date,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalOrders      int64   `parquet:"name=total_orders,type=INT64"`
	Segment          string  `parquet:"name=customer_segment,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type driverRow struct {
	ID                 int64   `parquet:"name=id,type=INT64"`
	Name               string  `parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Email              string  `parquet:"name=email,type=BYTE_ARRAY,convertedtype=UTF8"`
	Phone              string  `parquet:"name=phone,type=BYTE_ARRAY,convertedtype=UTF8"`
	VehicleType        string  `parquet:"name=vehicle_type,type=BYTE_ARRAY,convertedtype=UTF8"`
	RegistrationDate   string  `parquet:"name=registration_date,type=BYTE_ARRAY,convertedtype=UTF8"`
	Rating             float64 `parquet:"name=rating,type=DOUBLE"`
	IsActive           bool    `parquet:"name=is_active,type=BOOLEAN"`
	CurrentLatitude    float64 `parquet:"name=current_latitude,type=DOUBLE"`
	CurrentLongitude   float64 `parquet:"name=current_longitude,type=DOUBLE"`
	LastLocationUpdate int64   `parquet:"name=last_location_update,type=INT64"`
}

type orderRow struct {
	ID                 int64   `parquet:"name=id,type=INT64"`
	CustomerID         int64   `parquet:"name=customer_id,type=INT64"`
	RestaurantID       int64   `parquet:"name=restaurant_id,type=INT64"`
	DriverID           int64   `parquet:"name=driver_id,type=INT64"`
	OrderDate          int64   `parquet:"name=order_date,type=INT64"`
	DeliveryTime       *int64  `parquet:"name=delivery_time,type=INT64,repetitiontype=OPTIONAL"`
	Status             string  `parquet:"name=status,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalAmount        float64 `parquet:"name=total_amount,type=DOUBLE"`
	DeliveryFee        float64 `parquet:"name=delivery_fee,type=DOUBLE"`
	PlatformFee        float64 `parquet:"name=platform_fee,type=DOUBLE"`
	RestaurantEarnings float64 `parquet:"name=restaurant_earnings,type=DOUBLE"`
	DriverEarnings     float64 `parquet:"name=driver_earnings,type=DOUBLE"`
	PaymentMethod      string  `parquet:"name=payment_method,type=BYTE_ARRAY,convertedtype=UTF8"`
	FoodRating         *int32  `parquet:"name=food_rating,type=INT32,repetitiontype=OPTIONAL"`
	DeliveryRating     *int32  `parquet:"name=delivery_rating,type=INT32,repetitiontype=OPTIONAL"`
	OverallRating      *int32  `parquet:"name=overall_rating,type=INT32,repetitiontype=OPTIONAL"`
}

type promotionRow struct {
	ID            int64   `parquet:"name=id,type=INT64"`
	Code          string  `parquet:"name=code,type=BYTE_ARRAY,convertedtype=UTF8"`
	DiscountType  string  `parquet:"name=discount_type,type=BYTE_ARRAY,convertedtype=UTF8"`
	DiscountValue float64 `parquet:"name=discount_value,type=DOUBLE"`
	StartDate     string  `parquet:"name=start_date,type=BYTE_ARRAY,convertedtype=UTF8"`
	EndDate       string  `parquet:"name=end_date,type=BYTE_ARRAY,convertedtype=UTF8"`
	UsageLimit    int64   `parquet:"name=usage_limit,type=INT64"`
	TimesUsed     int64   `parquet:"name=times_used,type=INT64"`
	MinOrderValue float64 `parquet:"name=min_order_value,type=DOUBLE"`
}

type orderPromotionRow struct {
	OrderID        int64   `parquet:"name=order_id,type=INT64"`
	PromotionID    int64   `parquet:"name=promotion_id,type=INT64"`
	DiscountAmount float64 `parquet:"name=discount_amount,type=DOUBLE"`
}

func (p *ParquetSink) WriteDataset(ds *models.Dataset) error {
	if p.cloud == nil {
		if err := os.MkdirAll(filepath.Join(p.basePath, p.folder), os.ModePerm); err != nil {
			return fmt.Errorf("creating staging directory: %w", err)
		}
	}

	restaurants := make([]restaurantRow, len(ds.Restaurants))
	for i, r := range ds.Restaurants {
		restaurants[i] = restaurantRow{
			ID: int64(r.ID), Name: r.Name, CuisineType: r.CuisineType, Address: r.Address,
			Latitude: r.Latitude, Longitude: r.Longitude, Rating: r.Rating,
			CreatedDate: r.CreatedDate.Format(dateLayout), OperatingHours: r.OperatingHours.String(),
			CommissionRate: r.CommissionRate, IsActive: r.IsActive,
		}
	}
	if err := writeParquet(p, "restaurants.parquet", restaurants); err != nil {
		return fmt.Errorf("writing restaurants: %w", err)
	}

	customers := make([]customerRow, len(ds.Customers))
	for i, c := range ds.Customers {
		customers[i] = customerRow{
			ID: int64(c.ID), Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address,
			Latitude: c.Latitude, Longitude: c.Longitude,
			RegistrationDate: c.RegistrationDate.Format(dateLayout),
			LastOrderDate:    c.LastOrderDate.Format(dateLayout),
			TotalOrders:      int64(c.TotalOrders), Segment: c.Segment,
		}
	}
	if err := writeParquet(p, "customers.parquet", customers); err != nil {
		return fmt.Errorf("writing customers: %w", err)
	}

	drivers := make([]driverRow, len(ds.Drivers))
	for i, d := range ds.Drivers {
		drivers[i] = driverRow{
			ID: int64(d.ID), Name: d.Name, Email: d.Email, Phone: d.Phone,
			VehicleType:      d.VehicleType,
			RegistrationDate: d.RegistrationDate.Format(dateLayout),
			Rating:           d.Rating, IsActive: d.IsActive,
			CurrentLatitude: d.CurrentLatitude, CurrentLongitude: d.CurrentLongitude,
			LastLocationUpdate: d.LastLocationUpdate.Unix(),
		}
	}
	if err := writeParquet(p, "drivers.parquet", drivers); err != nil {
		return fmt.Errorf("writing drivers: %w", err)
	}

	orders := make([]orderRow, len(ds.Orders))
	for i, o := range ds.Orders {
		row := orderRow{
			ID: int64(o.ID), CustomerID: int64(o.CustomerID),
			RestaurantID: int64(o.RestaurantID), DriverID: int64(o.DriverID),
			OrderDate: o.OrderDate.Unix(), Status: o.Status,
			TotalAmount: o.TotalAmount, DeliveryFee: o.DeliveryFee, PlatformFee: o.PlatformFee,
			RestaurantEarnings: o.RestaurantEarnings, DriverEarnings: o.DriverEarnings,
			PaymentMethod: o.PaymentMethod,
		}
		if o.DeliveryTime != nil {
			ts := o.DeliveryTime.Unix()
			row.DeliveryTime = &ts
		}
		row.FoodRating = toInt32(o.FoodRating)
		row.DeliveryRating = toInt32(o.DeliveryRating)
		row.OverallRating = toInt32(o.OverallRating)
		orders[i] = row
	}
	if err := writeParquet(p, "orders.parquet", orders); err != nil {
		return fmt.Errorf("writing orders: %w", err)
	}

	promotions := make([]promotionRow, len(ds.Promotions))
	for i, promo := range ds.Promotions {
		promotions[i] = promotionRow{
			ID: int64(promo.ID), Code: promo.Code,
			DiscountType: promo.DiscountType, DiscountValue: promo.DiscountValue,
			StartDate: promo.StartDate.Format(dateLayout), EndDate: promo.EndDate.Format(dateLayout),
			UsageLimit: int64(promo.UsageLimit), TimesUsed: int64(promo.TimesUsed),
			MinOrderValue: promo.MinOrderValue,
		}
	}
	if err := writeParquet(p, "promotions.parquet", promotions); err != nil {
		return fmt.Errorf("writing promotions: %w", err)
	}

	links := make([]orderPromotionRow, len(ds.OrderPromotions))
	for i, l := range ds.OrderPromotions {
		links[i] = orderPromotionRow{
			OrderID: int64(l.OrderID), PromotionID: int64(l.PromotionID),
			DiscountAmount: l.DiscountAmount,
		}
	}
	if err := writeParquet(p, "order_promotions.parquet", links); err != nil {
		return fmt.Errorf("writing order_promotions: %w", err)
	}

	return nil
}

// open returns the parquet file target for one table: a local file under the
// staging directory, or a buffered cloud object when an S3 destination is
// configured.
func (p *ParquetSink) open(name string) (source.ParquetFile, error) {
	if p.cloud != nil {
		w, err := p.cloud.NewWriter(p.bucket, filepath.Join(p.folder, name))
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		return newCloudParquetFile(w), nil
	}

	fw, err := local.NewLocalFileWriter(filepath.Join(p.basePath, p.folder, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create local file writer: %w", err)
	}
	return fw, nil
}

func writeParquet[T any](p *ParquetSink, name string, rows []T) error {
	fw, err := p.open(name)
	if err != nil {
		return err
	}

	pw, err := writer.NewParquetWriter(fw, new(T), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}

	for _, row := range rows {
		if err := pw.Write(row); err != nil {
			fw.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

func toInt32(n *int) *int32 {
	if n == nil {
		return nil
	}
	v := int32(*n)
	return &v
}

func (p *ParquetSink) Close() error {
	return nil
}

// cloudParquetFile adapts a buffered cloud object writer to the
// source.ParquetFile interface. Writing is append-only; reads and seeking
// from the end are not supported for cloud storage.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func newCloudParquetFile(cloudWriter cloudwriter.CloudWriter) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cloudWriter}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	// the object is implicitly created when writing starts; the instance is
	// already set up for that
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(b []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(b []byte) (int, error) {
	return c.cloudWriter.Write(b)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
