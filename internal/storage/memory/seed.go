package memory

import "github.com/runventure/marathon-finder/internal/models"

// Seed is the built-in marathon catalogue served when no remote store is
// configured.
func Seed() []models.Marathon {
	return []models.Marathon{
		{
			ID:           1,
			Name:         "서울 국제 마라톤",
			Date:         "2024년 3월 17일",
			Location:     "서울",
			Country:      "대한민국",
			Type:         models.TypeDomestic,
			Distances:    []string{"풀코스", "하프", "10km"},
			Participants: "30,000명",
			Difficulty:   models.DifficultyEasy,
			Weather: models.Weather{
				Condition:   models.WeatherCloudy,
				Temperature: "12°C",
				Description: "구름 많음",
			},
			Scenery: "🌸 도심 속 봄꽃 러닝",
			Price:   "50,000원",
			Details: models.Details{
				CourseDescription: "한강을 따라 달리는 아름다운 코스로, 여의도와 반포 지역을 지나며 봄꽃을 감상할 수 있습니다. 평탄한 코스로 초보자도 부담 없이 도전할 수 있으며, 서울의 랜드마크를 구경하며 달리는 특별한 경험을 선사합니다.",
				Elevation:         "총 상승 50m (거의 평탄)",
				Services:          []string{"완주 메달", "기록증", "완주 티셔츠", "간식 박스", "물/이온음료", "의료 지원"},
				Deadline:          "2024년 3월 10일",
				Website:           "www.seoul-marathon.com",
				StartTime:         "오전 8:00",
				Parking:           "여의도공원 주차장 이용 가능 (선착순)",
			},
		},
		{
			ID:           2,
			Name:         "도쿄 마라톤",
			Date:         "2024년 3월 3일",
			Location:     "도쿄",
			Country:      "일본",
			Type:         models.TypeInternational,
			Distances:    []string{"풀코스", "10km"},
			Participants: "35,000명",
			Difficulty:   models.DifficultyMedium,
			Weather: models.Weather{
				Condition:   models.WeatherSunny,
				Temperature: "10°C",
				Description: "맑고 쾌적",
			},
			Scenery: "🗼 도쿄타워 뷰 코스",
			Price:   "¥16,200",
			Details: models.Details{
				CourseDescription: "도쿄의 심장을 가로지르는 세계 6대 마라톤 중 하나! 신주쿠, 아사쿠사, 도쿄타워를 지나며 일본의 전통과 현대가 조화를 이룬 풍경을 만끽할 수 있습니다. 응원 인파가 많아 끝까지 힘을 낼 수 있어요!",
				Elevation:         "총 상승 120m (완만한 언덕)",
				Services:          []string{"완주 메달", "피니셔 타월", "온센 할인권", "도시락", "음료수", "구급 지원"},
				Deadline:          "2024년 2월 20일",
				Website:           "www.marathon.tokyo",
				StartTime:         "오전 9:10",
				Parking:           "대중교통 이용 권장 (주차 불가)",
			},
		},
		{
			ID:           3,
			Name:         "제주 벚꽃 마라톤",
			Date:         "2024년 4월 7일",
			Location:     "제주도",
			Country:      "대한민국",
			Type:         models.TypeDomestic,
			Distances:    []string{"풀코스", "하프", "10km", "5km"},
			Participants: "15,000명",
			Difficulty:   models.DifficultyMedium,
			Weather: models.Weather{
				Condition:   models.WeatherSunny,
				Temperature: "16°C",
				Description: "완벽한 날씨",
			},
			Scenery: "🌸 벚꽃 터널 질주",
			Price:   "45,000원",
			Details: models.Details{
				CourseDescription: "제주 전농로 벚꽃길을 따라 달리는 환상적인 코스! 만개한 벚꽃 아래를 달리며 봄의 정취를 만끽할 수 있습니다. 코스 중간중간 바다 뷰도 감상할 수 있어 지루할 틈이 없어요. 사진 찍기 좋은 포토존이 많아 인생샷 각!",
				Elevation:         "총 상승 180m (중간 난이도)",
				Services:          []string{"완주 메달", "기록증", "한라봉 간식", "제주 흑돼지 도시락", "음료", "셔틀버스"},
				Deadline:          "2024년 3월 31일",
				Website:           "www.jeju-cherry-marathon.com",
				StartTime:         "오전 8:30",
				Parking:           "무료 주차장 제공 (충분함)",
			},
		},
		{
			ID:           4,
			Name:         "보스톤 마라톤",
			Date:         "2024년 4월 15일",
			Location:     "보스톤",
			Country:      "미국",
			Type:         models.TypeInternational,
			Distances:    []string{"풀코스"},
			Participants: "30,000명",
			Difficulty:   models.DifficultyHard,
			Weather: models.Weather{
				Condition:   models.WeatherRainy,
				Temperature: "8°C",
				Description: "비 올 수도",
			},
			Scenery: "🏛️ 역사적인 레이스",
			Price:   "$205",
			Details: models.Details{
				CourseDescription: "세계에서 가장 오래된 마라톤! 1897년부터 시작된 전통의 대회로, 하트브레이크 힐을 포함한 도전적인 코스가 특징입니다. 자격 기록이 필요한 엘리트 대회로, 완주하면 평생 자랑할 수 있어요! 역사를 느끼며 달리는 특별한 경험!",
				Elevation:         "총 상승 220m (고난이도 언덕)",
				Services:          []string{"완주 메달", "재킷", "기록증", "에너지바", "스포츠 음료", "의료팀"},
				Deadline:          "2024년 3월 15일",
				Website:           "www.baa.org",
				StartTime:         "오전 10:00",
				Parking:           "대중교통 이용 필수 (주차 제한)",
			},
		},
		{
			ID:           5,
			Name:         "부산 국제 마라톤",
			Date:         "2024년 5월 12일",
			Location:     "부산",
			Country:      "대한민국",
			Type:         models.TypeDomestic,
			Distances:    []string{"풀코스", "하프"},
			Participants: "20,000명",
			Difficulty:   models.DifficultyEasy,
			Weather: models.Weather{
				Condition:   models.WeatherSunny,
				Temperature: "20°C",
				Description: "화창한 봄날",
			},
			Scenery: "🌊 해운대 바다 뷰",
			Price:   "40,000원",
			Details: models.Details{
				CourseDescription: "해운대 해변을 따라 달리는 최고의 오션 뷰 코스! 광안대교, 이기대, 송정해변을 지나며 시원한 바닷바람을 맞으며 달릴 수 있어요. 완주 후엔 해운대에서 회 한 접시 어때요? 평탄한 코스로 기록 단축에도 좋아요!",
				Elevation:         "총 상승 40m (매우 평탄)",
				Services:          []string{"완주 메달", "기록증", "티셔츠", "밀면 쿠폰", "음료", "온천 할인권"},
				Deadline:          "2024년 5월 5일",
				Website:           "www.busan-marathon.com",
				StartTime:         "오전 7:30",
				Parking:           "해운대 공영주차장 (유료)",
			},
		},
		{
			ID:           6,
			Name:         "런던 마라톤",
			Date:         "2024년 4월 21일",
			Location:     "런던",
			Country:      "영국",
			Type:         models.TypeInternational,
			Distances:    []string{"풀코스"},
			Participants: "40,000명",
			Difficulty:   models.DifficultyMedium,
			Weather: models.Weather{
				Condition:   models.WeatherRainy,
				Temperature: "11°C",
				Description: "비 예상",
			},
			Scenery: "🏰 빅벤 & 런던아이",
			Price:   "£49",
			Details: models.Details{
				CourseDescription: "템즈강을 따라 달리며 런던의 명소를 모두 볼 수 있는 환상적인 코스! 빅벤, 타워브릿지, 버킹엄 궁전을 지나며 영국의 역사와 문화를 온몸으로 느낄 수 있어요. 열정적인 응원과 함께 잊지 못할 추억을 만들어보세요!",
				Elevation:         "총 상승 60m (거의 평탄)",
				Services:          []string{"완주 메달", "기록증", "굿백", "에너지젤", "음료", "응급 처치"},
				Deadline:          "2024년 4월 1일",
				Website:           "www.londonmarathon.com",
				StartTime:         "오전 10:00",
				Parking:           "지하철 이용 권장",
			},
		},
		{
			ID:           7,
			Name:         "춘천 마라톤",
			Date:         "2024년 10월 20일",
			Location:     "춘천",
			Country:      "대한민국",
			Type:         models.TypeDomestic,
			Distances:    []string{"풀코스", "하프", "10km"},
			Participants: "12,000명",
			Difficulty:   models.DifficultyEasy,
			Weather: models.Weather{
				Condition:   models.WeatherCloudy,
				Temperature: "14°C",
				Description: "선선한 가을",
			},
			Scenery: "🍂 단풍 물든 호반 길",
			Price:   "35,000원",
			Details: models.Details{
				CourseDescription: "의암호와 소양호를 따라 달리는 아름다운 호반 마라톤! 가을 단풍이 물든 풍경 속을 달리며 자연의 아름다움을 만끽할 수 있어요. 완주 후엔 춘천 닭갈비로 에너지 충전! 선선한 날씨로 기록 단축하기 좋은 대회입니다.",
				Elevation:         "총 상승 90m (완만함)",
				Services:          []string{"완주 메달", "기록증", "티셔츠", "막국수 쿠폰", "음료", "셔틀버스"},
				Deadline:          "2024년 10월 13일",
				Website:           "www.chuncheon-marathon.com",
				StartTime:         "오전 9:00",
				Parking:           "무료 주차장 제공",
			},
		},
		{
			ID:           8,
			Name:         "베를린 마라톤",
			Date:         "2024년 9월 29일",
			Location:     "베를린",
			Country:      "독일",
			Type:         models.TypeInternational,
			Distances:    []string{"풀코스"},
			Participants: "45,000명",
			Difficulty:   models.DifficultyEasy,
			Weather: models.Weather{
				Condition:   models.WeatherSunny,
				Temperature: "18°C",
				Description: "완벽한 조건",
			},
			Scenery: "🚪 브란덴부르크 문",
			Price:   "€150",
			Details: models.Details{
				CourseDescription: "세계 기록이 가장 많이 나온 고속 코스! 평탄하고 넓은 도로에서 자신의 한계에 도전해보세요. 브란덴부르크 문에서 피니시하는 감동적인 순간은 평생 잊지 못할 거예요. 완벽한 가을 날씨와 열정적인 응원이 함께합니다!",
				Elevation:         "총 상승 35m (초평탄 고속 코스)",
				Services:          []string{"완주 메달", "기록증", "타월", "프레첼", "맥주", "의료팀"},
				Deadline:          "2024년 9월 15일",
				Website:           "www.bmw-berlin-marathon.com",
				StartTime:         "오전 9:15",
				Parking:           "대중교통 이용 권장",
			},
		},
		{
			ID:           9,
			Name:         "경주 벚꽃 마라톤",
			Date:         "2024년 4월 14일",
			Location:     "경주",
			Country:      "대한민국",
			Type:         models.TypeDomestic,
			Distances:    []string{"풀코스", "하프", "10km", "5km"},
			Participants: "18,000명",
			Difficulty:   models.DifficultyMedium,
			Weather: models.Weather{
				Condition:   models.WeatherSunny,
				Temperature: "15°C",
				Description: "벚꽃 만개",
			},
			Scenery: "🏛️ 천년 고도의 향기",
			Price:   "40,000원",
			Details: models.Details{
				CourseDescription: "천년 고도 경주의 역사 유적지를 달리는 특별한 코스! 보문호, 첨성대, 불국사를 지나며 신라의 숨결을 느낄 수 있어요. 만개한 벚꽃과 역사 유적의 조화가 환상적이며, 타임머신을 타고 과거로 떠나는 듯한 기분을 느낄 수 있습니다.",
				Elevation:         "총 상승 150m (완만한 언덕)",
				Services:          []string{"완주 메달", "기록증", "티셔츠", "경주빵", "황남빵", "온천 할인권"},
				Deadline:          "2024년 4월 7일",
				Website:           "www.gyeongju-marathon.com",
				StartTime:         "오전 8:00",
				Parking:           "보문단지 주차장 (무료)",
			},
		},
		{
			ID:           10,
			Name:         "시카고 마라톤",
			Date:         "2024년 10월 13일",
			Location:     "시카고",
			Country:      "미국",
			Type:         models.TypeInternational,
			Distances:    []string{"풀코스"},
			Participants: "45,000명",
			Difficulty:   models.DifficultyEasy,
			Weather: models.Weather{
				Condition:   models.WeatherCloudy,
				Temperature: "13°C",
				Description: "쾌적함",
			},
			Scenery: "🏙️ 마천루 사이 달리기",
			Price:   "$230",
			Details: models.Details{
				CourseDescription: "시카고의 29개 지역을 관통하는 도심 투어 마라톤! 윌리스 타워를 비롯한 마천루 사이를 달리며 미국 대도시의 활력을 느낄 수 있어요. 평탄한 코스와 쾌적한 가을 날씨로 자기 기록 경신하기 딱 좋습니다. 피자와 핫도그로 완주 축하!",
				Elevation:         "총 상승 45m (거의 평탄)",
				Services:          []string{"완주 메달", "기록증", "재킷", "피자 쿠폰", "음료", "의료 지원"},
				Deadline:          "2024년 10월 1일",
				Website:           "www.chicagomarathon.com",
				StartTime:         "오전 7:30",
				Parking:           "대중교통 이용 권장",
			},
		},
		{
			ID:           11,
			Name:         "대구 국제 마라톤",
			Date:         "2024년 4월 7일",
			Location:     "대구",
			Country:      "대한민국",
			Type:         models.TypeDomestic,
			Distances:    []string{"풀코스", "하프", "10km"},
			Participants: "25,000명",
			Difficulty:   models.DifficultyEasy,
			Weather: models.Weather{
				Condition:   models.WeatherSunny,
				Temperature: "17°C",
				Description: "화창",
			},
			Scenery: "🌳 앞산 자락 러닝",
			Price:   "38,000원",
			Details: models.Details{
				CourseDescription: "앞산 자락을 따라 달리는 아름다운 녹색 코스! 두류공원을 출발해 대구의 주요 명소를 지나며 도시의 활력을 느낄 수 있어요. 봄꽃이 만개한 거리를 달리며 상쾌한 기분을 만끽하세요. 완주 후 동화사에서 힐링 타임!",
				Elevation:         "총 상승 70m (평탄)",
				Services:          []string{"완주 메달", "기록증", "티셔츠", "막창 쿠폰", "음료", "찜질방 할인권"},
				Deadline:          "2024년 3월 31일",
				Website:           "www.daegu-marathon.com",
				StartTime:         "오전 8:00",
				Parking:           "두류공원 주차장 (무료)",
			},
		},
		{
			ID:           12,
			Name:         "뉴욕 마라톤",
			Date:         "2024년 11월 3일",
			Location:     "뉴욕",
			Country:      "미국",
			Type:         models.TypeInternational,
			Distances:    []string{"풀코스"},
			Participants: "50,000명",
			Difficulty:   models.DifficultyMedium,
			Weather: models.Weather{
				Condition:   models.WeatherCloudy,
				Temperature: "10°C",
				Description: "선선함",
			},
			Scenery: "🗽 센트럴파크 피니시",
			Price:   "$295",
			Details: models.Details{
				CourseDescription: "세계 최대 규모의 마라톤! 5개 자치구를 모두 관통하며 뉴욕의 다양한 문화를 체험할 수 있어요. 베라자노 브릿지에서 시작해 센트럴파크에서 피니시하는 드라마틱한 코스! 200만 명의 응원 인파가 여러분을 환호합니다. 꿈의 대회!",
				Elevation:         "총 상승 150m (브릿지 구간)",
				Services:          []string{"완주 메달", "기록증", "폰초", "베이글", "음료", "의료팀"},
				Deadline:          "2024년 10월 20일",
				Website:           "www.nycmarathon.org",
				StartTime:         "오전 8:00",
				Parking:           "대중교통 필수",
			},
		},
	}
}
