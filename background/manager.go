package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wingmate-nz/companion-api/external/onesignal"
	"github.com/wingmate-nz/companion-api/store"
)

// BackgroundManager runs the companion background jobs: notification
// fan-out after confirmed matches, reputation bookkeeping and the
// periodic listing expiry sweep
type BackgroundManager struct {
	store store.CompanionCore

	notification NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	companionCore := store.NewCompanionStore(ormDB, store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	))

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store:        companionCore,
		notification: NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), o),
		taskServer:   taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterAllTasks binds every known job to the task server
func (m *BackgroundManager) RegisterAllTasks() error {
	if err := m.RegisterTask(TaskNotifyMatchConfirmed, m.NotifyMatchConfirmed); err != nil {
		return err
	}
	if err := m.RegisterTask(TaskRecordMatchConfirmed, m.RecordMatchConfirmed); err != nil {
		return err
	}
	return m.RegisterTask(TaskExpireListings, m.ExpireListings)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}

	go m.expiryLoop()

	m.worker = m.taskServer.NewWorker("companion-worker", 5)
	return m.worker.Launch()
}

// expiryLoop enqueues the expiry sweep on a fixed cadence so stale
// listings leave the candidate pool without owner action
func (m *BackgroundManager) expiryLoop() {
	interval := viper.GetDuration("matching.expiry_interval")
	if interval <= 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	for range ticker.C {
		if err := m.ExpireListings(); err != nil {
			log.WithField("prefix", "background").WithError(err).Error("listing expiry sweep failed")
		}
	}
}
