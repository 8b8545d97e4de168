package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	clickSampleRate = beep.SampleRate(44100)
	clickDuration   = 40 * time.Millisecond
	clickBaseFreq   = 440.0
)

// clicker 单词收起一个字母时播放短促的提示音
type clicker struct {
	enabled bool
}

// newClicker 初始化扬声器，失败时返回静音的 clicker
func newClicker(enable bool) *clicker {
	c := &clicker{}
	if !enable {
		return c
	}
	if err := speaker.Init(clickSampleRate, clickSampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Sound] Audio initialization failed: %v", err)
		return c
	}
	c.enabled = true
	return c
}

// clickFrequency 不同单词使用不同音高
func clickFrequency(word int) float64 {
	return clickBaseFreq * float64(word+2) / 2
}

// play 播放第 word 个单词的提示音
func (c *clicker) play(word int) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(clickSampleRate, clickFrequency(word))
	if err != nil {
		log.Printf("[Sound] SineTone error: %v", err)
		return
	}
	tone := beep.Take(clickSampleRate.N(clickDuration), sine)
	speaker.Play(&effects.Volume{Streamer: tone, Base: 2, Volume: -2})
}

func (c *clicker) close() {
	if c.enabled {
		speaker.Close()
	}
}
